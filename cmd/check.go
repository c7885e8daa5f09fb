// Package cmd implements the command-line interface for walbar.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/walbar-cli/walbar/color"
	"github.com/walbar-cli/walbar/constant"
	"github.com/walbar-cli/walbar/filesystem"
	"github.com/walbar-cli/walbar/icon"
	"github.com/walbar-cli/walbar/style"
	"github.com/walbar-cli/walbar/where"
)

// CheckDependencies verifies the availability of required system dependencies.
// A missing pywal binary only matters when no generated palette exists yet.
func CheckDependencies() {
	exists, err := filesystem.API().Exists(where.WalColors())
	if err == nil && exists {
		return
	}

	if _, err := exec.LookPath("wal"); err != nil {
		printMissingDependencyError("wal")
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Linux:
		installCmd = "sudo pacman -S python-pywal"
	case constant.Darwin:
		installCmd = "pip install pywal"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The required dependency '%s' was not found in your PATH,\nand no generated palette exists yet.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.HiBlue).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
