package oauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const (
	authorizePath = "/login/oauth/authorize"
	tokenPath     = "/login/oauth/access_token"
)

// Client talks to the OAuth App endpoints of github.com. Requests are not authenticated with a user token.
type Client struct {
	cfg        *oauth2.Config
	httpClient *http.Client
}

var _ interfaces.OAuth = (*Client)(nil)

type Option func(*Client)

// WithWebURL replaces https://github.com, e.g. for GitHub Enterprise Server or tests
func WithWebURL(base *url.URL) Option {
	return func(x *Client) {
		root := strings.TrimSuffix(base.String(), "/")
		x.cfg.Endpoint = oauth2.Endpoint{
			AuthURL:   root + authorizePath,
			TokenURL:  root + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		}
	}
}

func WithRedirectURL(redirectURL string) Option {
	return func(x *Client) {
		x.cfg.RedirectURL = redirectURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(clientID types.GitHubClientID, clientSecret types.GitHubClientSecret, options ...Option) (*Client, error) {
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "client ID is empty")
	}
	if clientSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "client secret is empty")
	}

	endpoint := github.Endpoint
	// client_id and client_secret are posted as form parameters
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	client := &Client{
		cfg: &oauth2.Config{
			ClientID:     string(clientID),
			ClientSecret: string(clientSecret),
			Endpoint:     endpoint,
		},
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// AuthorizeURL returns the page the user opens in a browser to grant access. It makes no request.
func (x *Client) AuthorizeURL() *url.URL {
	u, err := url.Parse(x.cfg.AuthCodeURL(""))
	if err != nil {
		// AuthURL comes from a parsed URL or a constant, so this is unreachable
		panic(goerr.Wrap(err, "invalid authorize URL", goerr.V("url", x.cfg.Endpoint.AuthURL)))
	}
	return u
}

// ExchangeCode trades the code of the OAuth redirect for an access token
func (x *Client) ExchangeCode(ctx context.Context, code string) (types.AccessToken, error) {
	if code == "" {
		return "", goerr.Wrap(types.ErrMissingCode, "code is empty")
	}

	logging.From(ctx).Debug("exchanging OAuth code",
		slog.String("token_url", x.cfg.Endpoint.TokenURL),
		slog.String("client_id", x.cfg.ClientID),
	)

	if x.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
	}

	token, err := x.cfg.Exchange(ctx, code)
	if err != nil {
		return "", classifyError(ctx, err)
	}

	return types.AccessToken(token.AccessToken), nil
}

func classifyError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return goerr.Wrap(ctxErr, "token exchange canceled")
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return goerr.Wrap(types.ErrAuth, "token exchange rejected",
			goerr.V("status", status),
			goerr.V("error_code", retrieveErr.ErrorCode),
			goerr.V("error_description", retrieveErr.ErrorDescription),
		)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return goerr.Wrap(types.ErrNetwork, "failed to send token request", goerr.V("cause", err.Error()))
	}

	// malformed body or response without access_token
	return goerr.Wrap(types.ErrAuth, "invalid token response", goerr.V("cause", err.Error()))
}
