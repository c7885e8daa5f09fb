// Package cmd implements the command-line interface for walbar.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walbar-cli/walbar/color"
	"github.com/walbar-cli/walbar/history"
	"github.com/walbar-cli/walbar/style"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.SetOut(os.Stdout)
}

// statusCmd reports the most recently applied color selection.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the most recently applied color selection",
	Run: func(cmd *cobra.Command, args []string) {
		last, err := history.Last()
		handleErr(err)

		if last.IsAbsent() {
			cmd.Println(style.Faint("No selection applied yet, run 'walbar apply' first"))
			return
		}

		record := last.MustGet()
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		cmd.Println(headerStyle("Last applied selection"))
		cmd.Printf("Accent     %s %s\n",
			style.Fg(color.Purple)("@"+string(record.Accent)),
			style.Swatch(record.AccentHex)(record.AccentHex),
		)
		cmd.Printf("Complement %s %s\n",
			style.Fg(color.Purple)("@"+string(record.Complement)),
			style.Swatch(record.ComplementHex)(record.ComplementHex),
		)
		cmd.Println(style.Faint(fmt.Sprintf("Applied %s to %s",
			record.AppliedAt.Format("2006-01-02 15:04:05"),
			record.Stylesheet,
		)))
	},
}
