package pgsql

import (
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:  newPgxClientRepository(dbPool),
		EventRepo:   newPgxEventRepository(dbPool),
		BudgetRepo:  newPgxBudgetRepository(dbPool),
		CatalogRepo: newPgxCatalogRepository(dbPool),
	}
}
