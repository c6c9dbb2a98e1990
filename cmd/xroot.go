package cmd

import (
	"github.com/urfave/cli/v3"
)

// xCmd groups the non-interactive commands. They take everything from flags
// or an answers file and never prompt, which makes them usable from scripts
// and CI.
func xCmd() *cli.Command {
	return &cli.Command{
		Name:  "x",
		Usage: "Non-interactive commands for scripts and CI",
		Commands: []*cli.Command{
			xNewCmd(),
		},
	}
}
