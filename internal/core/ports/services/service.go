package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing engine functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Client    ClientSvcFacade
	Event     EventSvcFacade
	Ledger    LedgerSvcFacade
	Budget    BudgetSvcFacade
	Reporting ReportingSvcFacade
	Catalog   CatalogSvcFacade
	Sync      SyncSvcFacade
}
