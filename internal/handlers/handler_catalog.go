package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/middleware"
)

// catalogHandler handles the payment method and expense item catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers the catalog routes.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(cs)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:id", h.getPaymentMethod)
		methods.PUT("/:id", h.updatePaymentMethod)
		methods.DELETE("/:id", h.deletePaymentMethod)
	}

	items := rg.Group("/expense-items")
	{
		items.POST("", h.createExpenseItem)
		items.GET("", h.listExpenseItems)
		items.GET("/:id", h.getExpenseItem)
		items.PUT("/:id", h.updateExpenseItem)
		items.DELETE("/:id", h.deleteExpenseItem)
	}
}

func (h *catalogHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.catalogService.CreatePaymentMethod(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create payment method")
		return
	}

	logger.Info("Payment method created", slog.String("payment_method_id", method.PaymentMethodID))
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

func (h *catalogHandler) getPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	method, err := h.catalogService.GetPaymentMethodByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "get payment method")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

func (h *catalogHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methods, err := h.catalogService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list payment methods")
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethods": dto.ToListPaymentMethodResponse(methods)})
}

func (h *catalogHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.catalogService.UpdatePaymentMethod(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "update payment method")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

func (h *catalogHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.catalogService.DeletePaymentMethod(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "delete payment method")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *catalogHandler) createExpenseItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpenseItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.catalogService.CreateExpenseItem(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create expense item")
		return
	}

	logger.Info("Expense item created", slog.String("expense_item_id", item.ExpenseItemID))
	c.JSON(http.StatusCreated, dto.ToExpenseItemResponse(item))
}

func (h *catalogHandler) getExpenseItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	item, err := h.catalogService.GetExpenseItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "get expense item")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseItemResponse(item))
}

func (h *catalogHandler) listExpenseItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	items, err := h.catalogService.ListExpenseItems(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list expense items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenseItems": dto.ToListExpenseItemResponse(items)})
}

func (h *catalogHandler) updateExpenseItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExpenseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpenseItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.catalogService.UpdateExpenseItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "update expense item")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseItemResponse(item))
}

func (h *catalogHandler) deleteExpenseItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.catalogService.DeleteExpenseItem(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "delete expense item")
		return
	}
	c.Status(http.StatusNoContent)
}
