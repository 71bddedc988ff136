package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// TestCredentialStore runs the conformance cases of CredentialStore. store must be empty.
func TestCredentialStore(t *testing.T, store interfaces.CredentialStore) {
	ctx := context.Background()

	t.Run("returns nil before first put", func(t *testing.T) {
		cred, err := store.GetCredential(ctx)
		gt.NoError(t, err)
		gt.V(t, cred).Equal((*model.Credential)(nil))
	})

	t.Run("put and get", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		token := types.AccessToken("gho_" + uuid.NewString())
		gt.NoError(t, store.PutCredential(ctx, &model.Credential{
			Token:     token,
			UpdatedAt: now,
		}))

		cred, err := store.GetCredential(ctx)
		gt.NoError(t, err)
		gt.V(t, cred).NotEqual((*model.Credential)(nil))
		gt.V(t, cred.Token).Equal(token)
		gt.True(t, cred.UpdatedAt.Equal(now))
	})

	t.Run("put overwrites", func(t *testing.T) {
		first := types.AccessToken("gho_" + uuid.NewString())
		second := types.AccessToken("gho_" + uuid.NewString())
		gt.NoError(t, store.PutCredential(ctx, &model.Credential{Token: first, UpdatedAt: time.Now()}))
		gt.NoError(t, store.PutCredential(ctx, &model.Credential{Token: second, UpdatedAt: time.Now()}))

		cred, err := store.GetCredential(ctx)
		gt.NoError(t, err)
		gt.V(t, cred.Token).Equal(second)
	})

	t.Run("returned credential is a copy", func(t *testing.T) {
		token := types.AccessToken("gho_" + uuid.NewString())
		gt.NoError(t, store.PutCredential(ctx, &model.Credential{Token: token}))

		cred, err := store.GetCredential(ctx)
		gt.NoError(t, err)
		cred.Token = "modified"

		again, err := store.GetCredential(ctx)
		gt.NoError(t, err)
		gt.V(t, again.Token).Equal(token)
	})

	t.Run("nil credential is rejected", func(t *testing.T) {
		gt.Error(t, store.PutCredential(ctx, nil))
	})
}
