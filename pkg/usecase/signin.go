package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
)

// AuthorizeURL returns nil when no OAuth client is configured
func (x *UseCase) AuthorizeURL() *url.URL {
	if x.clients.OAuth() == nil {
		return nil
	}
	return x.clients.OAuth().AuthorizeURL()
}

// LoadCredential returns the stored credential, or nil on first run
func (x *UseCase) LoadCredential(ctx context.Context) (*model.Credential, error) {
	store := x.clients.CredentialStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "credential store is not configured")
	}

	cred, err := store.GetCredential(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load credential")
	}
	return cred, nil
}

// SignIn exchanges the authorization code for an access token and persists it.
// Nothing is stored when the exchange fails.
func (x *UseCase) SignIn(ctx context.Context, code string) (*model.Credential, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, goerr.Wrap(types.ErrMissingCode, "authorization code is empty")
	}

	oauth := x.clients.OAuth()
	if oauth == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "OAuth client is not configured")
	}
	store := x.clients.CredentialStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "credential store is not configured")
	}

	token, err := oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	cred := &model.Credential{
		Token:     token,
		UpdatedAt: logging.CtxTime(ctx),
	}
	if err := store.PutCredential(ctx, cred); err != nil {
		return nil, goerr.Wrap(err, "failed to save credential")
	}

	logging.From(ctx).Info("signed in to GitHub", "credential", cred)
	return cred, nil
}
