package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/domain/mock"
	"github.com/m-mizutani/octosearch/pkg/infra"
	"github.com/m-mizutani/octosearch/pkg/repository/memory"
	"github.com/m-mizutani/octosearch/pkg/usecase"
)

func TestAuthorizeURLWithoutOAuth(t *testing.T) {
	uc := usecase.New(infra.New())
	gt.True(t, uc.AuthorizeURL() == nil)
}

func TestAuthorizeURL(t *testing.T) {
	oauth := &mock.OAuthMock{
		AuthorizeURLFunc: mustURL(t, "https://github.com/login/oauth/authorize?client_id=abc"),
	}
	uc := usecase.New(infra.New(
		infra.WithOAuth(oauth),
		infra.WithCredentialStore(memory.NewCredentialStore()),
	))

	u := uc.AuthorizeURL()
	gt.V(t, u.String()).Equal("https://github.com/login/oauth/authorize?client_id=abc")
	gt.A(t, oauth.AuthorizeURLCalls()).Length(1)
}
