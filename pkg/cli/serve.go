package cli

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/controller/server"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		cfg      appConfig
		addr     string
		timezone string
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: cfg.Flags(
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Binding address",
				Value:       "127.0.0.1:8000",
				Sources:     cli.EnvVars("OCTOSEARCH_ADDR"),
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "timezone",
				Usage:       "Time zone of dates in repository views",
				Value:       "UTC",
				Sources:     cli.EnvVars("OCTOSEARCH_TIMEZONE"),
				Destination: &timezone,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Timezone", timezone),
				slog.Any("Config", &cfg),
			)

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return goerr.Wrap(types.ErrInvalidOption, "invalid time zone", goerr.V("timezone", timezone), goerr.V("cause", err.Error()))
			}

			rt, err := cfg.newRuntime(ctx, false, "http://"+addr+"/oauth/callback")
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			signIn := flow.NewSignIn(rt.uc)
			defer signIn.Close()
			signedIn, err := signIn.Restore(ctx)
			if err != nil {
				return err
			}
			logging.Default().Info("sign-in state restored", "signed_in", signedIn)

			s := server.New(rt.uc, server.WithLocation(loc), server.WithSignIn(signIn))

			// canceled on shutdown so that history streams end
			baseCtx, cancelBase := context.WithCancel(ctx)
			defer cancelBase()

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:        addr,
				Handler:     s.Mux(),
				BaseContext: func(net.Listener) context.Context { return baseCtx },

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// no WriteTimeout: /api/history/stream is long lived
			}

			httpServer.RegisterOnShutdown(cancelBase)

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
