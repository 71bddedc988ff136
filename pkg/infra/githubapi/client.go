package githubapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// tokenType makes oauth2 send "Authorization: token <token>"
const tokenType = "token"

// Client calls the GitHub REST API on behalf of the signed in user
type Client struct {
	credentials interfaces.CredentialStore
	baseURL     *url.URL
	transport   http.RoundTripper
}

var _ interfaces.GitHubAPI = (*Client)(nil)

type Option func(*Client)

// WithBaseURL replaces https://api.github.com/. The path must end with a slash.
func WithBaseURL(baseURL *url.URL) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(credentials interfaces.CredentialStore, options ...Option) (*Client, error) {
	if credentials == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "credential store is required")
	}

	client := &Client{
		credentials: credentials,
		transport:   http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.baseURL != nil && client.baseURL.Path == "" {
		client.baseURL.Path = "/"
	}

	return client, nil
}

// buildGithubClient is called per request so that a token stored after New is picked up
func (x *Client) buildGithubClient(ctx context.Context) (*github.Client, error) {
	cred, err := x.credentials.GetCredential(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load credential")
	}
	if cred == nil || cred.Token == "" {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "no access token is stored, sign in first")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: string(cred.Token),
		TokenType:   tokenType,
	})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: ts, Base: x.transport},
	}

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client, nil
}

func (x *Client) SearchRepositories(ctx context.Context, query string) (*model.SearchResult, error) {
	client, err := x.buildGithubClient(ctx)
	if err != nil {
		return nil, err
	}

	// https://docs.github.com/en/rest/search/search#search-repositories
	req, err := client.NewRequest(http.MethodGet, "search/repositories?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build search request", goerr.V("query", query))
	}

	var result model.SearchResult
	if _, err := client.Do(ctx, req, &result); err != nil {
		return nil, classifyError(err, "failed to search repositories", goerr.V("query", query))
	}

	logging.From(ctx).Debug("searched repositories",
		slog.String("query", query),
		slog.Int("total_count", result.TotalCount),
		slog.Int("items", len(result.Items)),
	)

	return &result, nil
}

func (x *Client) GetRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	client, err := x.buildGithubClient(ctx)
	if err != nil {
		return nil, err
	}

	// https://docs.github.com/en/rest/repos/repos#get-a-repository
	path := fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	req, err := client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build repository request", goerr.V("owner", owner), goerr.V("name", name))
	}

	var repo model.Repository
	if _, err := client.Do(ctx, req, &repo); err != nil {
		return nil, classifyError(err, "failed to get repository", goerr.V("owner", owner), goerr.V("name", name))
	}

	return &repo, nil
}

// classifyError maps go-github errors to the error taxonomy. Cancellation is kept as is.
func classifyError(err error, msg string, values ...goerr.Option) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return goerr.Wrap(err, msg, values...)
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		values = append(values, goerr.V("status", errResp.Response.StatusCode), goerr.V("message", errResp.Message))
		switch errResp.Response.StatusCode {
		case http.StatusNotFound:
			return goerr.Wrap(types.ErrNotFound, msg, values...)
		case http.StatusUnauthorized:
			return goerr.Wrap(types.ErrAuth, msg, values...)
		}
	}

	values = append(values, goerr.V("cause", err.Error()))
	return goerr.Wrap(types.ErrNetwork, msg, values...)
}
