package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/middleware"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
)

// reportingHandler handles aggregation routes: the portfolio summary and
// the per-event grouped breakdowns.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	store            *store.Store
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade, st *store.Store) *reportingHandler {
	return &reportingHandler{reportingService: rs, store: st}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade, st *store.Store) {
	h := newReportingHandler(rs, st)

	rg.GET("/reports/summary", h.getSummary)
	events := rg.Group("/events/:eventID")
	{
		events.GET("/expenses/by-destination", h.getExpensesByDestination)
		events.GET("/funding/by-source", h.getFundingBySource)
	}
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, count, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "get summary")
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{
		Events:     count,
		Balance:    dto.ToEventBalanceResponse(balance),
		LastUpdate: h.store.LastUpdate(),
	})
}

func (h *reportingHandler) getExpensesByDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	shares, err := h.reportingService.ExpensesByDestination(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, logger, err, "get expenses by destination")
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": dto.ToListGroupShareResponse(shares)})
}

func (h *reportingHandler) getFundingBySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	shares, err := h.reportingService.FundingBySource(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, logger, err, "get funding by source")
		return
	}
	c.JSON(http.StatusOK, gin.H{"funding": dto.ToListGroupShareResponse(shares)})
}
