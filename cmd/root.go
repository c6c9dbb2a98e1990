package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/slsforge/slsforge/pkg/plugins"
	"github.com/slsforge/slsforge/pkg/version"
)

var Version = version.String()

// ErrInterrupted marks a run stopped by the user (Ctrl-C). main maps it to
// exit code 130.
var ErrInterrupted = errors.New("interrupted")

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:  "slsforge",
		Usage: "Scaffold serverless API projects",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("slsforge version %s\n", Version)
					return nil
				},
			},
			{
				Name:      "new",
				Usage:     "Interactively scaffold a new project",
				ArgsUsage: "[directory]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Value: false, Usage: "Overwrite existing files"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return New(ctx, cmd)
				},
			},
			{
				Name:  "plugins",
				Usage: "List the plugin catalog",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					for _, name := range plugins.DefaultCatalog() {
						fmt.Println(name)
					}
					return nil
				},
			},
			xCmd(),
		},
	}

	return app.Run(ctx, args)
}
