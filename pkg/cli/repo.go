package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func repoCommand() *cli.Command {
	var (
		cfg      appConfig
		timezone string
	)

	return &cli.Command{
		Name:      "repo",
		Usage:     "Show details of a repository. Without argument, the origin remote of the current git repository is used",
		ArgsUsage: "[owner/name]",
		Flags: cfg.Flags(
			&cli.StringFlag{
				Name:        "timezone",
				Usage:       "Time zone of the last update, e.g. Asia/Tokyo",
				Value:       "UTC",
				Sources:     cli.EnvVars("OCTOSEARCH_TIMEZONE"),
				Destination: &timezone,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			owner, name, err := repoTarget(c.Args().First())
			if err != nil {
				return err
			}

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return goerr.Wrap(types.ErrInvalidOption, "invalid time zone", goerr.V("timezone", timezone), goerr.V("cause", err.Error()))
			}

			rt, err := cfg.newRuntime(ctx, false, "")
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			detail := flow.NewDetail(rt.uc, loc)
			defer detail.Close()

			view, err := detail.Load(ctx, owner, name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "%s\n  %s\n  %s\n  Language: %s\n  Last update: %s\n  Avatar: %s\n",
				view.FullName,
				view.Stars,
				view.Description,
				view.Language,
				view.LastUpdate,
				view.AvatarURL,
			)
			return err
		},
	}
}

// repoTarget splits "owner/name", or detects it from the working directory when arg is empty
func repoTarget(arg string) (string, string, error) {
	if arg == "" {
		dir, err := os.Getwd()
		if err != nil {
			return "", "", goerr.Wrap(err, "failed to get working directory")
		}
		return DetectGitHubRepo(dir)
	}

	owner, name, ok := strings.Cut(arg, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", goerr.Wrap(types.ErrMissingLoginData, "repository must be owner/name", goerr.V("arg", arg))
	}
	return owner, name, nil
}
