package repositories

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// EventReader defines read operations on the backend event surface.
type EventReader interface {
	// FindEventByID retrieves a specific event, transactions included.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves all events known to the backend.
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

// EventWriter defines write operations on the backend event surface.
// Saving or updating an event persists its transaction list with it; a
// transaction row is never modified once written.
type EventWriter interface {
	// SaveEvent persists a new event and its transactions.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEvent updates an existing event, appending any new transactions.
	UpdateEvent(ctx context.Context, event domain.Event) error

	// DeleteEvent removes the event and its transactions.
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventRepositoryFacade combines all event repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
