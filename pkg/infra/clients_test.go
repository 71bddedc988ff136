package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/domain/mock"
	"github.com/m-mizutani/octosearch/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.True(t, clients.GitHubAPI() == nil)
		gt.True(t, clients.OAuth() == nil)
		gt.True(t, clients.CredentialStore() == nil)
		gt.True(t, clients.HistoryRepository() == nil)
	})

	t.Run("WithGitHubAPI option sets API client", func(t *testing.T) {
		api := &mock.GitHubAPIMock{}
		clients := infra.New(infra.WithGitHubAPI(api))
		gt.V(t, clients.GitHubAPI()).Equal(api)
	})

	t.Run("WithOAuth option sets OAuth client", func(t *testing.T) {
		oauth := &mock.OAuthMock{}
		clients := infra.New(infra.WithOAuth(oauth))
		gt.V(t, clients.OAuth()).Equal(oauth)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		api := &mock.GitHubAPIMock{}
		store := &mock.CredentialStoreMock{}
		history := &mock.HistoryRepositoryMock{}

		clients := infra.New(
			infra.WithGitHubAPI(api),
			infra.WithCredentialStore(store),
			infra.WithHistoryRepository(history),
		)

		gt.V(t, clients.GitHubAPI()).Equal(api)
		gt.V(t, clients.CredentialStore()).Equal(store)
		gt.V(t, clients.HistoryRepository()).Equal(history)
		gt.True(t, clients.OAuth() == nil)
	})
}
