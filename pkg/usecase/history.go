package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/errutil"
)

func (x *UseCase) historyRepository() (interfaces.HistoryRepository, error) {
	repo := x.clients.HistoryRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "history repository is not configured")
	}
	return repo, nil
}

// RecordHistory upserts repo and pushes the new list to watchers
func (x *UseCase) RecordHistory(ctx context.Context, repo *model.Repository) error {
	history, err := x.historyRepository()
	if err != nil {
		return err
	}

	x.historyMu.Lock()
	defer x.historyMu.Unlock()

	if err := history.InsertOrUpdate(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to record history")
	}
	x.reloadHistory(ctx, history)
	return nil
}

func (x *UseCase) ListHistory(ctx context.Context) ([]*model.Repository, error) {
	history, err := x.historyRepository()
	if err != nil {
		return nil, err
	}

	repos, err := history.List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list history")
	}
	return repos, nil
}

func (x *UseCase) ClearHistory(ctx context.Context) error {
	history, err := x.historyRepository()
	if err != nil {
		return err
	}

	x.historyMu.Lock()
	defer x.historyMu.Unlock()

	if err := history.Clear(ctx); err != nil {
		return goerr.Wrap(err, "failed to clear history")
	}
	x.reloadHistory(ctx, history)
	return nil
}

// WatchHistory returns a channel receiving the current list first and a fresh
// list after every write made through this UseCase. It is closed when ctx is done.
func (x *UseCase) WatchHistory(ctx context.Context) (<-chan []*model.Repository, error) {
	history, err := x.historyRepository()
	if err != nil {
		return nil, err
	}

	x.historyMu.Lock()
	defer x.historyMu.Unlock()

	if _, ok := x.history.Get(); !ok {
		repos, err := history.List(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list history")
		}
		x.history.Set(repos)
	}

	return x.history.Subscribe(ctx), nil
}

// reloadHistory must be called with historyMu held. The write already
// succeeded, so a failed reload is reported but not returned.
func (x *UseCase) reloadHistory(ctx context.Context, history interfaces.HistoryRepository) {
	repos, err := history.List(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to reload history", err)
		return
	}
	x.history.Set(repos)
}
