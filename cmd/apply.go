// Package cmd implements the command-line interface for walbar.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/walbar-cli/walbar/color"
	"github.com/walbar-cli/walbar/icon"
	"github.com/walbar-cli/walbar/style"
	"github.com/walbar-cli/walbar/stylesheet"
	"github.com/walbar-cli/walbar/util"
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolP("dry-run", "d", false, "Analyze and report without touching the stylesheet")
	applyCmd.Flags().BoolP("force", "f", false, "Recolor even when the palette is unchanged")
}

// applyCmd runs the full recolor pipeline against the Waybar stylesheet.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Analyze the pywal palette and recolor the Waybar stylesheet",
	Long: `Load the pywal palette, select its accent and complement colors, and rewrite
the hover and active rules of the Waybar stylesheet in place. Text colors are
chosen per module group for maximum contrast.`,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		runApply(
			lo.Must(cmd.Flags().GetBool("dry-run")),
			lo.Must(cmd.Flags().GetBool("force")),
		)
	},
}

// runApply executes the recolor pipeline and reports the outcome. Shared by
// the root command and the apply subcommand.
func runApply(dryRun, force bool) {
	erase := util.PrintErasable(fmt.Sprintf("%s Recoloring...", icon.Get(icon.Progress)))
	result, err := stylesheet.Update(stylesheet.Options{DryRun: dryRun, Force: force})
	erase()
	handleErr(err)

	if result.Skipped {
		fmt.Println(style.Faint("Palette unchanged, nothing to do (use --force to recolor anyway)"))
		return
	}

	fmt.Printf("%s Accent     %s %s\n",
		icon.Get(icon.Palette),
		style.Fg(color.Purple)("@"+string(result.Selection.Accent)),
		style.Swatch(result.AccentHex)(result.AccentHex),
	)
	fmt.Printf("%s Complement %s %s\n",
		icon.Get(icon.Palette),
		style.Fg(color.Purple)("@"+string(result.Selection.Complement)),
		style.Swatch(result.ComplementHex)(result.ComplementHex),
	)

	if dryRun {
		fmt.Printf("%s Would rewrite %s in %s\n",
			icon.Get(icon.Progress),
			util.Quantify(result.RulesRewritten, "rule", "rules"),
			style.Faint(result.Path),
		)
		return
	}

	fmt.Printf("%s Recolored %s (%s)\n",
		icon.Get(icon.Success),
		style.Faint(result.Path),
		util.Quantify(result.RulesRewritten, "rule", "rules"),
	)
}
