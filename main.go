// Package main is the entry point for the walbar application.
package main

import (
	"github.com/samber/lo"

	"github.com/walbar-cli/walbar/cmd"
	"github.com/walbar-cli/walbar/config"
	"github.com/walbar-cli/walbar/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
