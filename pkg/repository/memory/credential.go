package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/repository"
)

type credentialStore struct {
	mu   sync.RWMutex
	cred *model.Credential
}

func (r *credentialStore) GetCredential(ctx context.Context) (*model.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cred == nil {
		return nil, nil
	}
	cpy := *r.cred
	return &cpy, nil
}

func (r *credentialStore) PutCredential(ctx context.Context, cred *model.Credential) error {
	if cred == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "credential is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *cred
	r.cred = &cpy
	return nil
}
