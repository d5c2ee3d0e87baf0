package services

import (
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(st *store.Store, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Client service first since budget and event services resolve client
	// references through it.
	container.Client = NewClientService(st, repos.ClientRepo)

	container.Event = NewEventService(st, repos.EventRepo, repos.ClientRepo, container.Client)
	container.Ledger = NewLedgerService(st, repos.EventRepo)
	container.Budget = NewBudgetService(st, repos.BudgetRepo, repos.EventRepo, repos.ClientRepo, container.Client)
	container.Reporting = NewReportingService(st)
	container.Catalog = NewCatalogService(st, repos.CatalogRepo)
	container.Sync = NewSyncService(st, repos)

	return container
}
