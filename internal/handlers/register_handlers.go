package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/papillon-eventos/event_ledger_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	st *store.Store,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", GetHome)

	setupAPIV1Routes(r, services, st)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	st *store.Store,
) {
	v1 := r.Group("/api/v1")

	registerClientRoutes(v1, services.Client, services.Event)
	registerEventRoutes(v1, services.Event)
	registerLedgerRoutes(v1, services.Ledger)
	registerBudgetRoutes(v1, services.Budget)
	registerReportingRoutes(v1, services.Reporting, st)
	registerCatalogRoutes(v1, services.Catalog)
	registerSyncRoutes(v1, services.Sync, st)
}
