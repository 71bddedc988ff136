package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// SearchRepositories returns ErrEmptyResult when GitHub reports no match
func (x *UseCase) SearchRepositories(ctx context.Context, query string) (*model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, goerr.Wrap(types.ErrInvalidQuery, "query is empty")
	}

	api := x.clients.GitHubAPI()
	if api == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API client is not configured")
	}

	result, err := api.SearchRepositories(ctx, query)
	if err != nil {
		return nil, err
	}

	if result.TotalCount == 0 {
		return nil, goerr.Wrap(types.ErrEmptyResult, "no repository matched", goerr.V("query", query))
	}

	return result, nil
}

func (x *UseCase) GetRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	if owner == "" || name == "" {
		return nil, goerr.Wrap(types.ErrMissingLoginData, "owner and name are required",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	api := x.clients.GitHubAPI()
	if api == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API client is not configured")
	}

	return api.GetRepository(ctx, owner, name)
}
