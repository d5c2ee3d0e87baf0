package services

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
)

// EventReaderSvc defines read operations for event data.
type EventReaderSvc interface {
	// GetEventByID retrieves a specific event by its unique identifier.
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves events newest-date-first, one page at a time.
	// The returned token fetches the next page; it is empty on the last.
	ListEvents(ctx context.Context, limit int, nextToken string) ([]domain.Event, string, error)

	// ListEventsByClient retrieves all events referencing the client.
	ListEventsByClient(ctx context.Context, clientID string) ([]domain.Event, error)
}

// EventWriterSvc defines write operations for event data. Event finances
// are not touched here; transactions go through the ledger service only.
type EventWriterSvc interface {
	// CreateEvent creates an event directly, resolving its client through
	// the registry.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)

	// UpdateEvent edits event details (never its transaction list).
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)

	// UpdateEventStatus moves the event to the given status.
	UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus) (*domain.Event, error)

	// DeleteEvent removes the event and detaches the client back-reference.
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventSvcFacade combines the event interfaces.
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
