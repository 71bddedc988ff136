package flow

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
	"github.com/m-mizutani/octosearch/pkg/utils/notify"
)

// Search runs repository searches on its own goroutines. A new submission
// cancels the previous one and only the latest submission publishes a state.
type Search struct {
	uc interfaces.UseCase

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool

	state notify.Value[model.SearchState]
}

// NewSearch creates a search flow. Searches run until ctx is done or Close is called.
func NewSearch(ctx context.Context, uc interfaces.UseCase) *Search {
	ctx, stop := context.WithCancel(ctx)
	return &Search{
		uc:   uc,
		ctx:  ctx,
		stop: stop,
	}
}

// Submit starts a search for query. An empty query is rejected without network access.
func (x *Search) Submit(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return goerr.Wrap(types.ErrInvalidQuery, "query is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.closed {
		return goerr.Wrap(types.ErrInvalidState, "search flow is closed")
	}

	if x.cancel != nil {
		x.cancel()
	}
	x.seq++
	seq := x.seq
	ctx, cancel := context.WithCancel(x.ctx)
	x.cancel = cancel

	x.state.Set(model.SearchState{Query: query, Status: model.SearchStatusLoading})

	x.wg.Add(1)
	go func() {
		defer x.wg.Done()
		defer cancel()
		x.run(ctx, seq, query)
	}()

	return nil
}

func (x *Search) run(ctx context.Context, seq uint64, query string) {
	result, err := x.uc.SearchRepositories(ctx, query)

	x.mu.Lock()
	defer x.mu.Unlock()

	if seq != x.seq {
		logging.From(ctx).Debug("drop superseded search", "query", query)
		return
	}
	x.cancel = nil

	switch {
	case err == nil:
		x.state.Set(model.SearchState{Query: query, Status: model.SearchStatusLoaded, Result: result})

	case errors.Is(err, context.Canceled):
		logging.From(ctx).Debug("search canceled", "query", query)

	case errors.Is(err, types.ErrEmptyResult):
		x.state.Set(model.SearchState{Query: query, Status: model.SearchStatusEmpty, Message: Message(err), Err: err})

	default:
		logging.From(ctx).Warn("failed to search repositories", "query", query, "error", err)
		x.state.Set(model.SearchState{Query: query, Status: model.SearchStatusFailed, Message: Message(err), Err: err})
	}
}

// Results replays the state of the latest submission and every later change
func (x *Search) Results(ctx context.Context) <-chan model.SearchState {
	return x.state.Subscribe(ctx)
}

// State returns the state of the latest submission. ok is false before the first Submit.
func (x *Search) State() (model.SearchState, bool) {
	return x.state.Get()
}

// Select records repo in the search history
func (x *Search) Select(ctx context.Context, repo *model.Repository) error {
	return x.uc.RecordHistory(ctx, repo)
}

// Wait blocks until running searches finish
func (x *Search) Wait() {
	x.wg.Wait()
}

// Close cancels running searches and waits for them
func (x *Search) Close() {
	x.mu.Lock()
	x.closed = true
	x.mu.Unlock()

	x.stop()
	x.wg.Wait()
}
