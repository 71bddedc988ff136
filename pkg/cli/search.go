package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func searchCommand() *cli.Command {
	var (
		cfg      appConfig
		selected string
	)

	return &cli.Command{
		Name:      "search",
		Usage:     "Search repositories",
		ArgsUsage: "<query>",
		Flags: cfg.Flags(
			&cli.StringFlag{
				Name:        "select",
				Usage:       "Record the result with this full name (owner/name) in the history",
				Destination: &selected,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")

			rt, err := cfg.newRuntime(ctx, false, "")
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			search := flow.NewSearch(ctx, rt.uc)
			defer search.Close()

			if err := search.Submit(query); err != nil {
				return err
			}
			search.Wait()

			w := c.Root().Writer
			state, _ := search.State()
			switch state.Status {
			case model.SearchStatusEmpty:
				_, err := fmt.Fprintln(w, state.Message)
				return err
			case model.SearchStatusFailed:
				return state.Err
			case model.SearchStatusLoaded:
			default:
				return goerr.Wrap(ctx.Err(), "search interrupted")
			}

			if err := printRepositories(w, state.Result.Items); err != nil {
				return err
			}

			if selected == "" {
				return nil
			}
			for _, repo := range state.Result.Items {
				if repo.FullName == selected {
					return search.Select(ctx, repo)
				}
			}
			return goerr.Wrap(types.ErrNotFound, "selected repository is not in the search result", goerr.V("full_name", selected))
		},
	}
}
