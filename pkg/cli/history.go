package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func historyCommand() *cli.Command {
	var (
		cfg      appConfig
		clearAll bool
	)

	return &cli.Command{
		Name:  "history",
		Usage: "Show repositories selected recently, most recent first",
		Flags: cfg.Flags(
			&cli.BoolFlag{
				Name:        "clear",
				Usage:       "Remove all entries",
				Destination: &clearAll,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := cfg.newRuntime(ctx, false, "")
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			w := c.Root().Writer

			if clearAll {
				if err := rt.uc.ClearHistory(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintln(w, "History cleared.")
				return err
			}

			repos, err := rt.uc.ListHistory(ctx)
			if err != nil {
				return err
			}
			return printRepositories(w, repos)
		},
	}
}
