package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/repository"
)

type historyEntry struct {
	repo *model.Repository
	seq  uint64
}

type historyRepository struct {
	mu      sync.RWMutex
	seq     uint64
	entries map[types.RepoFullName]*historyEntry
}

func (r *historyRepository) InsertOrUpdate(ctx context.Context, repo *model.Repository) error {
	if repo == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "repository is nil")
	}
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(err, "invalid history entry")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.entries[repo.Key()] = &historyEntry{
		repo: repo.Copy(),
		seq:  r.seq,
	}

	return nil
}

func (r *historyRepository) List(ctx context.Context) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*historyEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b *historyEntry) int {
		switch {
		case a.seq > b.seq:
			return -1
		case a.seq < b.seq:
			return 1
		}
		return 0
	})

	repos := make([]*model.Repository, len(entries))
	for i, entry := range entries {
		repos[i] = entry.repo.Copy()
	}
	return repos, nil
}

func (r *historyRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[types.RepoFullName]*historyEntry)
	return nil
}
