package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/domain/mock"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

func repository(owner, name string) *model.Repository {
	return &model.Repository{
		Name:      name,
		FullName:  owner + "/" + name,
		Owner:     model.Owner{Login: owner},
		UpdatedAt: "2021-05-01T12:00:00Z",
	}
}

func TestSearchLoaded(t *testing.T) {
	ctx := context.Background()
	uc := &mock.UseCaseMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
			return &model.SearchResult{
				TotalCount: 3,
				Items: []*model.Repository{
					repository("octocat", "a"),
					repository("octocat", "b"),
					repository("octocat", "c"),
				},
			}, nil
		},
	}
	f := flow.NewSearch(ctx, uc)
	defer f.Close()

	gt.NoError(t, f.Submit(" octocat "))
	f.Wait()

	state, ok := f.State()
	gt.True(t, ok)
	gt.V(t, state.Query).Equal("octocat")
	gt.V(t, state.Status).Equal(model.SearchStatusLoaded)
	gt.A(t, state.Result.Items).Length(3)
	gt.V(t, state.Result.Items[0].FullName).Equal("octocat/a")
	gt.V(t, state.Result.Items[2].FullName).Equal("octocat/c")
}

func TestSearchEmpty(t *testing.T) {
	ctx := context.Background()
	uc := &mock.UseCaseMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
			return nil, goerr.Wrap(types.ErrEmptyResult, "no repository matched")
		},
	}
	f := flow.NewSearch(ctx, uc)
	defer f.Close()

	gt.NoError(t, f.Submit("zzzzzz-nonexistent-zzzz"))
	f.Wait()

	state, _ := f.State()
	gt.V(t, state.Status).Equal(model.SearchStatusEmpty)
	gt.V(t, state.Message).Equal("No search result")
}

func TestSearchFailed(t *testing.T) {
	ctx := context.Background()
	uc := &mock.UseCaseMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
			return nil, goerr.Wrap(types.ErrNetwork, "connection refused")
		},
	}
	f := flow.NewSearch(ctx, uc)
	defer f.Close()

	gt.NoError(t, f.Submit("octocat"))
	f.Wait()

	state, _ := f.State()
	gt.V(t, state.Status).Equal(model.SearchStatusFailed)
	gt.S(t, state.Message).Contains("connection refused")
}

func TestSearchEmptyQuery(t *testing.T) {
	uc := &mock.UseCaseMock{}
	f := flow.NewSearch(context.Background(), uc)
	defer f.Close()

	err := f.Submit("   ")
	gt.True(t, errors.Is(err, types.ErrInvalidQuery))
	_, ok := f.State()
	gt.False(t, ok)
	gt.A(t, uc.SearchRepositoriesCalls()).Length(0)
}

func TestSearchLatestWins(t *testing.T) {
	ctx := context.Background()
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	uc := &mock.UseCaseMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
			if query == "first" {
				close(firstStarted)
				<-releaseFirst
				// result arrives after being superseded
				return &model.SearchResult{TotalCount: 1, Items: []*model.Repository{repository("a", "first")}}, nil
			}
			return &model.SearchResult{TotalCount: 1, Items: []*model.Repository{repository("b", "second")}}, nil
		},
	}
	f := flow.NewSearch(ctx, uc)
	defer f.Close()

	gt.NoError(t, f.Submit("first"))
	<-firstStarted
	gt.NoError(t, f.Submit("second"))
	close(releaseFirst)
	f.Wait()

	state, _ := f.State()
	gt.V(t, state.Query).Equal("second")
	gt.V(t, state.Status).Equal(model.SearchStatusLoaded)
	gt.V(t, state.Result.Items[0].FullName).Equal("b/second")
}

func TestSearchSupersededIsCanceled(t *testing.T) {
	ctx := context.Background()
	firstStarted := make(chan struct{})
	firstCanceled := make(chan struct{})

	uc := &mock.UseCaseMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
			if query == "first" {
				close(firstStarted)
				<-ctx.Done()
				close(firstCanceled)
				return nil, ctx.Err()
			}
			return &model.SearchResult{TotalCount: 1, Items: []*model.Repository{repository("b", "second")}}, nil
		},
	}
	f := flow.NewSearch(ctx, uc)
	defer f.Close()

	gt.NoError(t, f.Submit("first"))
	<-firstStarted
	gt.NoError(t, f.Submit("second"))
	recv(t, firstCanceled)
	f.Wait()

	state, _ := f.State()
	gt.V(t, state.Query).Equal("second")
	gt.V(t, state.Status).Equal(model.SearchStatusLoaded)
}

func TestSearchObserverSeesLoadingThenLoaded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})
	uc := &mock.UseCaseMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
			<-release
			return &model.SearchResult{TotalCount: 1, Items: []*model.Repository{repository("a", "b")}}, nil
		},
	}
	f := flow.NewSearch(ctx, uc)
	defer f.Close()

	gt.NoError(t, f.Submit("q"))
	results := f.Results(ctx)
	gt.V(t, recv(t, results).Status).Equal(model.SearchStatusLoading)

	close(release)
	gt.V(t, recv(t, results).Status).Equal(model.SearchStatusLoaded)
}

func TestSearchClose(t *testing.T) {
	ctx := context.Background()
	uc := &mock.UseCaseMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	f := flow.NewSearch(ctx, uc)

	gt.NoError(t, f.Submit("octocat"))
	f.Close()

	state, _ := f.State()
	gt.V(t, state.Status).Equal(model.SearchStatusLoading)

	err := f.Submit("again")
	gt.True(t, errors.Is(err, types.ErrInvalidState))
}

func TestSearchSelect(t *testing.T) {
	ctx := context.Background()
	var recorded []*model.Repository
	uc := &mock.UseCaseMock{
		RecordHistoryFunc: func(ctx context.Context, repo *model.Repository) error {
			recorded = append(recorded, repo)
			return nil
		},
	}
	f := flow.NewSearch(ctx, uc)
	defer f.Close()

	gt.NoError(t, f.Select(ctx, repository("foo", "bar")))
	gt.A(t, recorded).Length(1)
	gt.V(t, recorded[0].FullName).Equal("foo/bar")
}
