package flow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/domain/mock"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

func TestDetailLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the view", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				gt.V(t, owner).Equal("foo")
				gt.V(t, name).Equal("bar")
				repo := repository(owner, name)
				repo.Stars = 1
				return repo, nil
			},
		}
		f := flow.NewDetail(uc, nil)

		view, err := f.Load(ctx, "foo", "bar")
		gt.NoError(t, err)
		gt.V(t, view.FullName).Equal("foo/bar")
		gt.V(t, view.Stars).Equal("1 star")
		gt.V(t, view.Description).Equal(model.NoDescription)
		gt.V(t, view.Language).Equal(model.NoLanguage)
		gt.V(t, view.LastUpdate).Equal("2021-05-01 12:00:00")

		state, ok := f.State()
		gt.True(t, ok)
		gt.V(t, state.Status).Equal(model.DetailStatusLoaded)
		gt.V(t, state.View).Equal(view)
	})

	t.Run("uses display location", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				return repository(owner, name), nil
			},
		}
		f := flow.NewDetail(uc, time.FixedZone("JST", 9*60*60))

		view, err := f.Load(ctx, "foo", "bar")
		gt.NoError(t, err)
		gt.V(t, view.LastUpdate).Equal("2021-05-01 21:00:00")
	})

	t.Run("missing owner", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		f := flow.NewDetail(uc, nil)

		_, err := f.Load(ctx, "", "bar")
		gt.True(t, errors.Is(err, types.ErrMissingLoginData))
		gt.A(t, uc.GetRepositoryCalls()).Length(0)

		state, _ := f.State()
		gt.V(t, state.Status).Equal(model.DetailStatusFailed)
	})

	t.Run("missing owner supersedes load in flight", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				close(entered)
				<-release
				return repository(owner, name), nil
			},
		}
		f := flow.NewDetail(uc, nil)

		done := make(chan error, 1)
		go func() {
			_, err := f.Load(ctx, "foo", "bar")
			done <- err
		}()
		<-entered

		_, err := f.Load(ctx, "", "bar")
		gt.True(t, errors.Is(err, types.ErrMissingLoginData))

		close(release)
		gt.NoError(t, recv(t, done))

		state, _ := f.State()
		gt.V(t, state.Status).Equal(model.DetailStatusFailed)
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				return nil, goerr.Wrap(types.ErrNotFound, "failed to get repository")
			},
		}
		f := flow.NewDetail(uc, nil)

		_, err := f.Load(ctx, "foo", "missing")
		gt.True(t, errors.Is(err, types.ErrNotFound))

		state, _ := f.State()
		gt.V(t, state.Status).Equal(model.DetailStatusFailed)
		gt.S(t, state.Message).Contains("failed to get repository")
	})

	t.Run("close cancels load", func(t *testing.T) {
		entered := make(chan struct{})
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				close(entered)
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		f := flow.NewDetail(uc, nil)

		done := make(chan error, 1)
		go func() {
			_, err := f.Load(ctx, "foo", "bar")
			done <- err
		}()
		<-entered
		f.Close()

		gt.True(t, errors.Is(recv(t, done), context.Canceled))
		state, _ := f.State()
		gt.V(t, state.Status).Equal(model.DetailStatusLoading)
	})
}

func TestMessage(t *testing.T) {
	gt.V(t, flow.Message(nil)).Equal("")
	gt.V(t, flow.Message(goerr.Wrap(types.ErrEmptyResult, "no repository matched"))).Equal("No search result")
	gt.S(t, flow.Message(goerr.Wrap(types.ErrNetwork, "dial failed"))).Contains("dial failed")
}
