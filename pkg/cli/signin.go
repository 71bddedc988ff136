package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/controller/server"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func signInCommand() *cli.Command {
	var (
		cfg          appConfig
		force        bool
		callbackAddr string
		code         string
	)

	return &cli.Command{
		Name:  "signin",
		Usage: "Sign in to GitHub with the OAuth App and keep the access token",
		Flags: cfg.Flags(
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Sign in again even if an access token is stored",
				Destination: &force,
			},
			&cli.StringFlag{
				Name:        "callback-addr",
				Usage:       "Address of the local server receiving the OAuth redirect",
				Value:       "127.0.0.1:8765",
				Sources:     cli.EnvVars("OCTOSEARCH_CALLBACK_ADDR"),
				Destination: &callbackAddr,
			},
			&cli.StringFlag{
				Name:        "code",
				Usage:       "Exchange this authorization code instead of waiting for the redirect",
				Destination: &code,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := cfg.newRuntime(ctx, true, "http://"+callbackAddr+"/oauth/callback")
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			w := c.Root().Writer
			signIn := flow.NewSignIn(rt.uc)
			defer signIn.Close()

			if !force {
				ok, err := signIn.Restore(ctx)
				if err != nil {
					return err
				}
				if ok {
					_, err := fmt.Fprintln(w, "Already signed in. Use --force to sign in again.")
					return err
				}
			}

			authURL, err := signIn.Start()
			if err != nil {
				return err
			}

			if code != "" {
				if err := signIn.HandleRedirect(ctx, url.Values{"code": {code}}); err != nil {
					return err
				}
				_, err := fmt.Fprintln(w, "Signed in.")
				return err
			}

			if _, err := fmt.Fprintf(w, "Open the URL below in your browser to sign in:\n\n  %s\n\n", authURL.String()); err != nil {
				return goerr.Wrap(err, "failed to write output")
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := waitForCallback(ctx, callbackAddr, server.New(rt.uc, server.WithSignIn(signIn))); err != nil {
				return err
			}

			_, err = fmt.Fprintln(w, "Signed in.")
			return err
		},
	}
}

// waitForCallback serves the OAuth callback on addr until the sign-in flow of srv
// succeeds or fails
func waitForCallback(ctx context.Context, addr string, srv *server.Server) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return goerr.Wrap(err, "failed to listen callback address", goerr.V("addr", addr))
	}

	httpServer := &http.Server{
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logging.From(ctx).Info("waiting for OAuth callback", "addr", addr)
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "failed to serve callback")
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logging.From(ctx).Warn("failed to shutdown callback server", "error", err)
			}
		}()

		for status := range srv.SignIn().WatchState(ctx) {
			switch status.State {
			case model.SignInSignedIn:
				return nil
			case model.SignInFailed:
				return goerr.New("sign-in failed", goerr.V("message", status.Message))
			}
		}
		return goerr.Wrap(ctx.Err(), "sign-in interrupted")
	})

	return eg.Wait()
}
