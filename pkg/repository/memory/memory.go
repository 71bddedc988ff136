package memory

import (
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// NewCredentialStore creates a credential store living only as long as the process
func NewCredentialStore() interfaces.CredentialStore {
	return &credentialStore{}
}

// NewHistoryRepository creates a new in-memory search history
func NewHistoryRepository() interfaces.HistoryRepository {
	return &historyRepository{
		entries: make(map[types.RepoFullName]*historyEntry),
	}
}
