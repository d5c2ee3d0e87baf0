package repositories

// RepositoryProvider holds the four backend CRUD surfaces the engine syncs
// against. This makes passing dependencies to the service container
// constructor cleaner.
type RepositoryProvider struct {
	ClientRepo  ClientRepositoryFacade
	EventRepo   EventRepositoryFacade
	BudgetRepo  BudgetRepositoryFacade
	CatalogRepo CatalogRepositoryFacade
}
