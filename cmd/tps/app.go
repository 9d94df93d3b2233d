package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/anna-singleton/tps/internal/identity"
)

func buildApp() *cli.Command {
	return &cli.Command{
		Name:    identity.CLIName,
		Usage:   "pick a project and open it as a tmux session",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the config file (defaults to the platform config dir)",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "override sort_mode: alphabetical or recent",
			},
			&cli.StringFlag{
				Name:  "tmux",
				Usage: "path to the tmux binary",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print the session name and directory instead of switching",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPick(ctx, cmd)
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print the ranked project list",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "paths",
						Usage: "print project paths only",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runList(ctx, cmd)
				},
			},
			{
				Name:      "switch",
				Usage:     "switch to a project by display name or path",
				ArgsUsage: "<name|path>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runSwitch(ctx, cmd)
				},
			},
		},
	}
}
