package repositories

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// ClientReader defines read operations on the backend client surface.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients known to the backend.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations on the backend client surface.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes the client record.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
