package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/middleware"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers routes related to events. The ledger and
// reporting routes nested under /events are registered separately.
func registerEventRoutes(rg *gin.RouterGroup, es portssvc.EventSvcFacade) {
	h := newEventHandler(es)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:eventID", h.getEvent)
		events.PUT("/:eventID", h.updateEvent)
		events.PATCH("/:eventID/status", h.updateEventStatus)
		events.DELETE("/:eventID", h.deleteEvent)
	}
}

func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create event")
		return
	}

	logger.Info("Event created",
		slog.String("event_id", event.EventID),
		slog.String("client_id", event.ClientID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, logger, err, "get event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEvents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	events, nextToken, err := h.eventService.ListEvents(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events, nextToken))
}

func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update event")
		return
	}

	logger.Info("Event updated", slog.String("event_id", eventID))
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) updateEventStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEventStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.UpdateEventStatus(c.Request.Context(), eventID, domain.EventStatus(req.Status))
	if err != nil {
		respondServiceError(c, logger, err, "update event status")
		return
	}

	logger.Info("Event status updated",
		slog.String("event_id", eventID),
		slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, logger, err, "delete event")
		return
	}

	logger.Info("Event deleted", slog.String("event_id", eventID))
	c.Status(http.StatusNoContent)
}
