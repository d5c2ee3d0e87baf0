package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/middleware"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
)

// syncHandler exposes bulk reconciliation with the backend.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
	store       *store.Store
}

// newSyncHandler creates a new syncHandler.
func newSyncHandler(ss portssvc.SyncSvcFacade, st *store.Store) *syncHandler {
	return &syncHandler{syncService: ss, store: st}
}

// registerSyncRoutes registers the sync routes.
func registerSyncRoutes(rg *gin.RouterGroup, ss portssvc.SyncSvcFacade, st *store.Store) {
	h := newSyncHandler(ss, st)

	sync := rg.Group("/sync")
	{
		sync.POST("/refresh", h.refresh)
	}
}

// refresh re-fetches everything from the backend and replaces the local
// snapshot.
func (h *syncHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.syncService.Hydrate(c.Request.Context()); err != nil {
		respondServiceError(c, logger, err, "refresh snapshot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastUpdate": h.store.LastUpdate()})
}
