package dto

import (
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// ClientReference carries the client fields supplied alongside a budget or
// event. The registry resolves it to a canonical client record by name.
type ClientReference struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	TaxID string `json:"taxID"`
	Notes string `json:"notes"`
}

// CreateClientRequest defines the data needed to register a client directly.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	TaxID string `json:"taxID"`
	Notes string `json:"notes"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers distinguish omitted fields from explicit zero values.
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	TaxID *string `json:"taxID"`
	Notes *string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	TaxID         string    `json:"taxID,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	EventIDs      []string  `json:"eventIDs"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	eventIDs := c.EventIDs
	if eventIDs == nil {
		eventIDs = []string{}
	}
	return ClientResponse{
		ClientID:      c.ClientID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		TaxID:         c.TaxID,
		Notes:         c.Notes,
		EventIDs:      eventIDs,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListClientsResponse converts domain clients to the list response DTO.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: out}
}
