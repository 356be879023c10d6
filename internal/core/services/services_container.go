package services

import (
	portsrepo "github.com/lakemi26/tech-challenge/internal/core/ports/repositories"
	portssvc "github.com/lakemi26/tech-challenge/internal/core/ports/services"
	"github.com/lakemi26/tech-challenge/internal/platform/config"
)

// NewServiceContainer wires the application services onto one repository.
func NewServiceContainer(cfg *config.Config, repo portsrepo.TransactionRepositoryFacade) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repo, WithPageSize(cfg.PageSize)),
		Analytics:   NewAnalyticsService(repo),
		Feed:        NewFeedService(repo),
	}
}
