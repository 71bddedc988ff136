package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octosearch/pkg/cli/config"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/infra"
	"github.com/m-mizutani/octosearch/pkg/usecase"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// appConfig is the flag set shared by commands talking to GitHub
type appConfig struct {
	github  config.GitHubOAuth
	storage config.Storage
	sentry  config.Sentry
}

func (x *appConfig) Flags(extra ...cli.Flag) []cli.Flag {
	return slice.Flatten(
		extra,
		x.github.Flags(),
		x.storage.Flags(),
		x.sentry.Flags(),
	)
}

func (x *appConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHub", x.github),
		slog.Any("Storage", x.storage),
		slog.Any("Sentry", &x.sentry),
	)
}

// runtime is a UseCase with the resources behind it
type runtime struct {
	uc     *usecase.UseCase
	stores *config.Stores
}

func (x *runtime) Close(ctx context.Context) {
	x.stores.Close(ctx)
}

// newRuntime opens the stores and builds the clients. The OAuth client is created
// only when requireOAuth is set or its credentials are given.
func (x *appConfig) newRuntime(ctx context.Context, requireOAuth bool, defaultRedirectURL string) (*runtime, error) {
	logging.From(ctx).Debug("configuration", "config", x)

	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	if requireOAuth && !x.github.Enabled() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--github-client-id and --github-client-secret are required")
	}

	stores, err := x.storage.Open(ctx)
	if err != nil {
		return nil, err
	}

	api, err := x.github.NewAPI(stores.Credentials)
	if err != nil {
		stores.Close(ctx)
		return nil, err
	}

	options := []infra.Option{
		infra.WithGitHubAPI(api),
		infra.WithCredentialStore(stores.Credentials),
		infra.WithHistoryRepository(stores.History),
	}
	if x.github.Enabled() {
		oauth, err := x.github.NewOAuth(defaultRedirectURL)
		if err != nil {
			stores.Close(ctx)
			return nil, err
		}
		options = append(options, infra.WithOAuth(oauth))
	}

	return &runtime{
		uc:     usecase.New(infra.New(options...)),
		stores: stores,
	}, nil
}

func printRepositories(w io.Writer, repos []*model.Repository) error {
	for _, repo := range repos {
		lang := model.NoLanguage
		if repo.Language != nil {
			lang = *repo.Language
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", repo.FullName, model.FormatStars(repo.Stars), lang); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}
