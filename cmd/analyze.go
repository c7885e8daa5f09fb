// Package cmd implements the command-line interface for walbar.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/walbar-cli/walbar/color"
	"github.com/walbar-cli/walbar/palette"
	"github.com/walbar-cli/walbar/style"
	"github.com/walbar-cli/walbar/util"
	"github.com/walbar-cli/walbar/wal"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	analyzeCmd.SetOut(os.Stdout)
}

// analyzeCmd inspects the pywal palette without touching the stylesheet.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Display the analyzed pywal palette and its accent/complement selection",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := wal.Load()
		handleErr(err)

		sel, err := palette.Analyze(p)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			report := struct {
				Accent        palette.Key `json:"accent"`
				AccentHex     string      `json:"accent_hex"`
				Complement    palette.Key `json:"complement"`
				ComplementHex string      `json:"complement_hex"`
				AccentText    palette.Key `json:"accent_text"`
				ComplementTxt palette.Key `json:"complement_text"`
			}{
				Accent:        sel.Accent,
				AccentHex:     p.Hex(sel.Accent),
				Complement:    sel.Complement,
				ComplementHex: p.Hex(sel.Complement),
				AccentText:    p.TextColorKey(p[sel.Accent]),
				ComplementTxt: p.TextColorKey(p[sel.Complement]),
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(report))
			return
		}

		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		cmd.Println(headerStyle("Palette"))
		cmd.Println(swatchRow(p, 0, 8))
		cmd.Println(swatchRow(p, 8, 16))
		cmd.Println()

		cmd.Println(headerStyle("Selection"))
		printEntry := func(name string, k palette.Key) {
			hex := p.Hex(k)
			cmd.Printf("%-11s %s %s %s\n",
				name,
				style.Fg(color.Purple)("@"+string(k)),
				style.Swatch(hex)(hex),
				style.Faint(fmt.Sprintf("text: @%s (%.2f:1)", p.TextColorKey(p[k]), bestContrast(p, k))),
			)
		}
		printEntry("Accent", sel.Accent)
		printEntry("Complement", sel.Complement)
	},
}

// swatchRow renders palette entries [from, to) as colored blocks sized to the
// terminal width.
func swatchRow(p palette.Palette, from, to int) string {
	width, _, err := util.TerminalSize()
	if err != nil {
		width = 80
	}
	cell := util.Max(1, util.Min(4, width/(to-from)-2))

	var b strings.Builder
	for i := from; i < to; i++ {
		b.WriteString(style.Bg(color.New(p.Hex(palette.Indexed(i))))(strings.Repeat(" ", cell)))
		b.WriteString(" ")
	}
	return b.String()
}

func bestContrast(p palette.Palette, k palette.Key) float64 {
	text := p.TextColorKey(p[k])
	return palette.ContrastRatio(p[text], p[k])
}
