package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/middleware"
)

// ledgerHandler handles the transaction and balance routes nested under an
// event.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the per-event ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ls)

	events := rg.Group("/events/:eventID")
	{
		events.POST("/transactions", h.appendTransaction)
		events.GET("/balance", h.getEventBalance)
		events.GET("/sources", h.listSources)
		events.GET("/sources/:source/balance", h.getSourceBalance)
	}
}

func (h *ledgerHandler) appendTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.AppendTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.AppendTransaction(c.Request.Context(), eventID, req)
	if err != nil {
		respondServiceError(c, logger, err, "append transaction")
		return
	}

	logger.Info("Transaction appended",
		slog.String("event_id", eventID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", txn.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *ledgerHandler) getEventBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	balance, err := h.ledgerService.EventBalance(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, logger, err, "get event balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventBalanceResponse(balance))
}

// listSources returns the event's funding sources in first-seen order. With
// ?detailed=true it returns the full per-source balances instead.
func (h *ledgerHandler) listSources(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	if c.Query("detailed") == "true" {
		balances, err := h.ledgerService.ListSourceBalances(c.Request.Context(), eventID)
		if err != nil {
			respondServiceError(c, logger, err, "list source balances")
			return
		}
		c.JSON(http.StatusOK, gin.H{"sources": dto.ToListSourceBalanceResponse(balances)})
		return
	}

	sources, err := h.ledgerService.ListSources(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, logger, err, "list sources")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sources": sources})
}

func (h *ledgerHandler) getSourceBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	source := c.Param("source")

	balance, err := h.ledgerService.SourceBalance(c.Request.Context(), eventID, source)
	if err != nil {
		respondServiceError(c, logger, err, "get source balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToSourceBalanceResponse(balance))
}
