package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubAPI OAuth

import (
	"context"
	"net/url"

	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// GitHubAPI is the authenticated part of the GitHub REST API. Every call carries the stored access token.
type GitHubAPI interface {
	SearchRepositories(ctx context.Context, query string) (*model.SearchResult, error)
	GetRepository(ctx context.Context, owner, name string) (*model.Repository, error)
}

// OAuth is the unauthenticated OAuth App endpoint group of github.com
type OAuth interface {
	AuthorizeURL() *url.URL
	ExchangeCode(ctx context.Context, code string) (types.AccessToken, error)
}
