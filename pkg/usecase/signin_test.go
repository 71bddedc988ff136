package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/domain/mock"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/infra"
	"github.com/m-mizutani/octosearch/pkg/repository/memory"
	"github.com/m-mizutani/octosearch/pkg/usecase"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
)

func TestSignIn(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	t.Run("stores token on success", func(t *testing.T) {
		oauth := &mock.OAuthMock{
			ExchangeCodeFunc: func(ctx context.Context, code string) (types.AccessToken, error) {
				gt.V(t, code).Equal("abc")
				return "gho_xyz", nil
			},
		}
		store := memory.NewCredentialStore()
		uc := usecase.New(infra.New(infra.WithOAuth(oauth), infra.WithCredentialStore(store)))

		cred, err := uc.SignIn(ctx, "abc")
		gt.NoError(t, err)
		gt.V(t, cred.Token).Equal("gho_xyz")
		gt.True(t, cred.UpdatedAt.Equal(now))

		stored, err := uc.LoadCredential(ctx)
		gt.NoError(t, err)
		gt.V(t, stored.Token).Equal("gho_xyz")
	})

	t.Run("exchange failure stores nothing", func(t *testing.T) {
		oauth := &mock.OAuthMock{
			ExchangeCodeFunc: func(ctx context.Context, code string) (types.AccessToken, error) {
				return "", goerr.Wrap(types.ErrAuth, "bad_verification_code")
			},
		}
		store := memory.NewCredentialStore()
		uc := usecase.New(infra.New(infra.WithOAuth(oauth), infra.WithCredentialStore(store)))

		_, err := uc.SignIn(ctx, "expired")
		gt.True(t, errors.Is(err, types.ErrAuth))

		stored, err := uc.LoadCredential(ctx)
		gt.NoError(t, err)
		gt.V(t, stored).Equal((*model.Credential)(nil))
	})

	t.Run("empty code is rejected without exchange", func(t *testing.T) {
		oauth := &mock.OAuthMock{}
		uc := usecase.New(infra.New(infra.WithOAuth(oauth), infra.WithCredentialStore(memory.NewCredentialStore())))

		_, err := uc.SignIn(ctx, "  ")
		gt.True(t, errors.Is(err, types.ErrMissingCode))
		gt.A(t, oauth.ExchangeCodeCalls()).Length(0)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		oauth := &mock.OAuthMock{
			ExchangeCodeFunc: func(ctx context.Context, code string) (types.AccessToken, error) {
				return "gho_xyz", nil
			},
		}
		storeErr := errors.New("disk full")
		store := &mock.CredentialStoreMock{
			PutCredentialFunc: func(ctx context.Context, cred *model.Credential) error {
				return storeErr
			},
		}
		uc := usecase.New(infra.New(infra.WithOAuth(oauth), infra.WithCredentialStore(store)))

		_, err := uc.SignIn(ctx, "abc")
		gt.True(t, errors.Is(err, storeErr))
	})

	t.Run("OAuth not configured", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithCredentialStore(memory.NewCredentialStore())))
		_, err := uc.SignIn(ctx, "abc")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestLoadCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("first run has no credential", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithCredentialStore(memory.NewCredentialStore())))
		cred, err := uc.LoadCredential(ctx)
		gt.NoError(t, err)
		gt.V(t, cred).Equal((*model.Credential)(nil))
	})

	t.Run("store not configured", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.LoadCredential(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
