package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"net/url"

	"github.com/m-mizutani/octosearch/pkg/domain/model"
)

type UseCase interface {
	AuthorizeURL() *url.URL
	LoadCredential(ctx context.Context) (*model.Credential, error)
	SignIn(ctx context.Context, code string) (*model.Credential, error)

	SearchRepositories(ctx context.Context, query string) (*model.SearchResult, error)
	GetRepository(ctx context.Context, owner, name string) (*model.Repository, error)

	RecordHistory(ctx context.Context, repo *model.Repository) error
	ListHistory(ctx context.Context) ([]*model.Repository, error)
	ClearHistory(ctx context.Context) error
	WatchHistory(ctx context.Context) (<-chan []*model.Repository, error)
}
