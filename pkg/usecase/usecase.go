package usecase

import (
	"sync"

	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/infra"
	"github.com/m-mizutani/octosearch/pkg/utils/notify"
)

type UseCase struct {
	clients *infra.Clients

	// historyMu serializes a history write with the reload that follows it, so
	// watchers never receive an older list after a newer one
	historyMu sync.Mutex
	history   notify.Value[[]*model.Repository]
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
