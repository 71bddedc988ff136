package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/domain/mock"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/infra"
	"github.com/m-mizutani/octosearch/pkg/usecase"
)

func TestSearchRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("returns items in received order", func(t *testing.T) {
		api := &mock.GitHubAPIMock{
			SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
				gt.V(t, query).Equal("octocat")
				return &model.SearchResult{
					TotalCount: 3,
					Items: []*model.Repository{
						newRepo("octocat", "a"),
						newRepo("octocat", "b"),
						newRepo("octocat", "c"),
					},
				}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHubAPI(api)))

		result, err := uc.SearchRepositories(ctx, "  octocat ")
		gt.NoError(t, err)
		gt.V(t, result.TotalCount).Equal(3)
		gt.V(t, result.Items[0].FullName).Equal("octocat/a")
		gt.V(t, result.Items[1].FullName).Equal("octocat/b")
		gt.V(t, result.Items[2].FullName).Equal("octocat/c")
	})

	t.Run("zero total is empty result", func(t *testing.T) {
		api := &mock.GitHubAPIMock{
			SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
				return &model.SearchResult{TotalCount: 0}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHubAPI(api)))

		_, err := uc.SearchRepositories(ctx, "zzzzzz-nonexistent-zzzz")
		gt.True(t, errors.Is(err, types.ErrEmptyResult))
	})

	t.Run("empty query does not hit the network", func(t *testing.T) {
		api := &mock.GitHubAPIMock{}
		uc := usecase.New(infra.New(infra.WithGitHubAPI(api)))

		_, err := uc.SearchRepositories(ctx, " \t")
		gt.True(t, errors.Is(err, types.ErrInvalidQuery))
		gt.A(t, api.SearchRepositoriesCalls()).Length(0)
	})

	t.Run("API error is passed through", func(t *testing.T) {
		api := &mock.GitHubAPIMock{
			SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
				return nil, goerr.Wrap(types.ErrNetwork, "connection refused")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHubAPI(api)))

		_, err := uc.SearchRepositories(ctx, "octocat")
		gt.True(t, errors.Is(err, types.ErrNetwork))
	})
}

func TestGetRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("returns repository", func(t *testing.T) {
		api := &mock.GitHubAPIMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				return newRepo(owner, name), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHubAPI(api)))

		repo, err := uc.GetRepository(ctx, "foo", "bar")
		gt.NoError(t, err)
		gt.V(t, repo.FullName).Equal("foo/bar")
	})

	t.Run("missing owner or name", func(t *testing.T) {
		api := &mock.GitHubAPIMock{}
		uc := usecase.New(infra.New(infra.WithGitHubAPI(api)))

		_, err := uc.GetRepository(ctx, "", "bar")
		gt.True(t, errors.Is(err, types.ErrMissingLoginData))
		_, err = uc.GetRepository(ctx, "foo", "")
		gt.True(t, errors.Is(err, types.ErrMissingLoginData))
		gt.A(t, api.GetRepositoryCalls()).Length(0)
	})
}
