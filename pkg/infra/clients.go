package infra

import (
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
)

// Clients bundles the external dependencies of the use cases. A nil client means
// the feature depending on it is not configured.
type Clients struct {
	githubAPI   interfaces.GitHubAPI
	oauth       interfaces.OAuth
	credentials interfaces.CredentialStore
	history     interfaces.HistoryRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubAPI() interfaces.GitHubAPI {
	return x.githubAPI
}
func (x *Clients) OAuth() interfaces.OAuth {
	return x.oauth
}
func (x *Clients) CredentialStore() interfaces.CredentialStore {
	return x.credentials
}
func (x *Clients) HistoryRepository() interfaces.HistoryRepository {
	return x.history
}

func WithGitHubAPI(client interfaces.GitHubAPI) Option {
	return func(x *Clients) {
		x.githubAPI = client
	}
}

func WithOAuth(client interfaces.OAuth) Option {
	return func(x *Clients) {
		x.oauth = client
	}
}

func WithCredentialStore(store interfaces.CredentialStore) Option {
	return func(x *Clients) {
		x.credentials = store
	}
}

func WithHistoryRepository(repo interfaces.HistoryRepository) Option {
	return func(x *Clients) {
		x.history = repo
	}
}
