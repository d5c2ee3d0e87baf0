package services

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data.
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its unique identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// GetClientByName retrieves the client with the exact display name.
	GetClientByName(ctx context.Context, name string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}

// ClientRegistrySvc defines the dedup/merge operations used whenever a
// budget or event references a client by name.
type ClientRegistrySvc interface {
	// UpsertFromReference resolves a client reference to a canonical client
	// id, merging newly supplied fields non-destructively and recording the
	// event back-reference. Idempotent with respect to the event id.
	UpsertFromReference(ctx context.Context, ref dto.ClientReference, eventID string) (string, error)

	// Detach removes an event back-reference. The client itself remains.
	Detach(ctx context.Context, clientID string, eventID string) error
}

// ClientWriterSvc defines direct write operations for client data.
type ClientWriterSvc interface {
	// CreateClient registers a client directly.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes the client record. Explicit only; clients are
	// never deleted as a side effect of event removal.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientRegistrySvc
	ClientWriterSvc
}
