package interfaces

import (
	"context"

	"github.com/m-mizutani/octosearch/pkg/domain/model"
)

//go:generate moq -out ../mock/repository.go -pkg mock . CredentialStore HistoryRepository

// CredentialStore keeps the single access token of this device
type CredentialStore interface {
	// GetCredential returns nil without error when no credential has been stored yet
	GetCredential(ctx context.Context) (*model.Credential, error)
	PutCredential(ctx context.Context, cred *model.Credential) error
}

// HistoryRepository keeps recently selected repositories keyed by full name
type HistoryRepository interface {
	// InsertOrUpdate stores repo as the most recent entry, replacing any entry with the same full name
	InsertOrUpdate(ctx context.Context, repo *model.Repository) error
	// List returns entries ordered from most recent to oldest
	List(ctx context.Context) ([]*model.Repository, error)
	Clear(ctx context.Context) error
}
