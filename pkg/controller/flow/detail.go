package flow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/notify"
)

// Detail loads one repository and renders its display form
type Detail struct {
	uc  interfaces.UseCase
	loc *time.Location

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc

	state notify.Value[model.DetailState]
}

// NewDetail creates a detail flow showing dates in loc (UTC when nil)
func NewDetail(uc interfaces.UseCase, loc *time.Location) *Detail {
	if loc == nil {
		loc = time.UTC
	}
	return &Detail{uc: uc, loc: loc}
}

// Load fetches owner/name and blocks until the view is ready. A later Load supersedes
// an earlier one still in flight.
func (x *Detail) Load(ctx context.Context, owner, name string) (*model.RepositoryView, error) {
	x.mu.Lock()
	if x.cancel != nil {
		x.cancel()
		x.cancel = nil
	}
	x.seq++
	seq := x.seq

	if owner == "" || name == "" {
		err := goerr.Wrap(types.ErrMissingLoginData, "owner and name are required",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
		x.state.Set(model.DetailState{Status: model.DetailStatusFailed, Message: Message(err)})
		x.mu.Unlock()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	x.cancel = cancel
	x.state.Set(model.DetailState{Status: model.DetailStatusLoading})
	x.mu.Unlock()
	defer cancel()

	repo, err := x.uc.GetRepository(ctx, owner, name)

	x.mu.Lock()
	defer x.mu.Unlock()

	if seq == x.seq {
		x.cancel = nil
	}
	if err != nil {
		if seq == x.seq && !errors.Is(err, context.Canceled) {
			x.state.Set(model.DetailState{Status: model.DetailStatusFailed, Message: Message(err)})
		}
		return nil, err
	}

	view := model.NewRepositoryView(repo, x.loc)
	if seq == x.seq {
		x.state.Set(model.DetailState{Status: model.DetailStatusLoaded, View: view})
	}
	return view, nil
}

func (x *Detail) WatchState(ctx context.Context) <-chan model.DetailState {
	return x.state.Subscribe(ctx)
}

func (x *Detail) State() (model.DetailState, bool) {
	return x.state.Get()
}

// Close cancels a Load in flight
func (x *Detail) Close() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.cancel != nil {
		x.cancel()
	}
}
