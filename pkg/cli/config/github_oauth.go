package config

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/infra/githubapi"
	"github.com/m-mizutani/octosearch/pkg/infra/oauth"
	"github.com/urfave/cli/v3"
)

const (
	defaultGitHubWebURL = "https://github.com"
	defaultGitHubAPIURL = "https://api.github.com/"
)

type GitHubOAuth struct {
	clientID     types.GitHubClientID
	clientSecret types.GitHubClientSecret `masq:"secret"`
	webURL       string
	apiURL       string
	redirectURL  string
}

func (x *GitHubOAuth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub OAuth App client ID",
			Category:    "GitHub",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("OCTOSEARCH_GITHUB_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub OAuth App client secret",
			Category:    "GitHub",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("OCTOSEARCH_GITHUB_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-web-url",
			Usage:       "GitHub web URL serving the OAuth endpoints",
			Category:    "GitHub",
			Value:       defaultGitHubWebURL,
			Destination: &x.webURL,
			Sources:     cli.EnvVars("OCTOSEARCH_GITHUB_WEB_URL"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Value:       defaultGitHubAPIURL,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("OCTOSEARCH_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-redirect-url",
			Usage:       "OAuth redirect URL registered for the OAuth App (optional)",
			Category:    "GitHub",
			Destination: &x.redirectURL,
			Sources:     cli.EnvVars("OCTOSEARCH_GITHUB_REDIRECT_URL"),
		},
	}
}

// Enabled is true when the OAuth App credentials are given
func (x *GitHubOAuth) Enabled() bool {
	return x.clientID != "" && x.clientSecret != ""
}

// NewOAuth builds the OAuth client. defaultRedirectURL is used when --github-redirect-url is not set.
func (x *GitHubOAuth) NewOAuth(defaultRedirectURL string) (*oauth.Client, error) {
	webURL, err := url.Parse(x.webURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub web URL", goerr.V("url", x.webURL), goerr.V("cause", err.Error()))
	}

	options := []oauth.Option{oauth.WithWebURL(webURL)}
	redirectURL := x.redirectURL
	if redirectURL == "" {
		redirectURL = defaultRedirectURL
	}
	if redirectURL != "" {
		options = append(options, oauth.WithRedirectURL(redirectURL))
	}

	return oauth.New(x.clientID, x.clientSecret, options...)
}

// NewAPI builds the REST API client reading the token from store
func (x *GitHubOAuth) NewAPI(store interfaces.CredentialStore) (*githubapi.Client, error) {
	raw := x.apiURL
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	apiURL, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", x.apiURL), goerr.V("cause", err.Error()))
	}

	return githubapi.New(store, githubapi.WithBaseURL(apiURL))
}

func (x GitHubOAuth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ClientID", x.clientID),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.String("WebURL", x.webURL),
		slog.String("APIURL", x.apiURL),
		slog.String("RedirectURL", x.redirectURL),
	)
}
