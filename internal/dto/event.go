package dto

import (
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// CreateEventRequest defines the data needed to create an event directly
// (as opposed to materializing one from an accepted budget).
type CreateEventRequest struct {
	Name      string          `json:"name" binding:"required,notblank"`
	Date      time.Time       `json:"date" binding:"required"`
	Client    ClientReference `json:"client" binding:"required"`
	Status    string          `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELED COMPLETED"`
	Headcount int             `json:"headcount" binding:"omitempty,gte=0"`
	Notes     string          `json:"notes"`
	Staff     []PersonPayload `json:"staff" binding:"dive"`
	Menus     []MenuPayload   `json:"menus" binding:"dive"`
}

// UpdateEventRequest defines the data allowed for updating an event.
// Transactions are deliberately absent: the ledger is append-only and only
// mutated through the transaction endpoint. JSON null reads as omitted;
// notes are cleared with an explicit "".
type UpdateEventRequest struct {
	Name      *string    `json:"name"`
	Date      *time.Time `json:"date"`
	Headcount *int       `json:"headcount"`
	Notes     *string    `json:"notes"`
}

// UpdateEventStatusRequest changes only the event status.
type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELED COMPLETED"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID       string                `json:"eventID"`
	Name          string                `json:"name"`
	Date          time.Time             `json:"date"`
	Status        string                `json:"status"`
	ClientID      string                `json:"clientID"`
	ClientName    string                `json:"clientName"`
	Headcount     int                   `json:"headcount,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Staff         []PersonPayload       `json:"staff,omitempty"`
	Menus         []MenuPayload         `json:"menus,omitempty"`
	Transactions  []TransactionResponse `json:"transactions"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListEventsResponse wraps the list of events with the pagination token for
// the next page. NextToken is empty on the last page.
type ListEventsResponse struct {
	Events    []EventResponse `json:"events"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ToEventResponse converts a domain.Event to EventResponse DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:       e.EventID,
		Name:          e.Name,
		Date:          e.Date,
		Status:        string(e.Status),
		ClientID:      e.ClientID,
		ClientName:    e.ClientName,
		Headcount:     e.Headcount,
		Notes:         e.Notes,
		Staff:         toPersonPayloads(e.Staff),
		Menus:         toMenuPayloads(e.Menus),
		Transactions:  ToListTransactionResponse(e.Transactions),
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEventsResponse converts domain events to the list response DTO.
func ToListEventsResponse(events []domain.Event, nextToken string) ListEventsResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = ToEventResponse(&e)
	}
	return ListEventsResponse{Events: out, NextToken: nextToken}
}

func toPersonPayloads(staff []domain.Person) []PersonPayload {
	if staff == nil {
		return nil
	}
	out := make([]PersonPayload, len(staff))
	for i, p := range staff {
		out[i] = PersonPayload{Name: p.Name, Role: p.Role, Pay: p.Pay}
	}
	return out
}

func toMenuPayloads(menus []domain.Menu) []MenuPayload {
	if menus == nil {
		return nil
	}
	out := make([]MenuPayload, len(menus))
	for i, m := range menus {
		items := make([]MenuItemPayload, len(m.Items))
		for j, item := range m.Items {
			items[j] = MenuItemPayload{
				Name:        item.Name,
				Kind:        string(item.Kind),
				Description: item.Description,
			}
		}
		out[i] = MenuPayload{Name: m.Name, Description: m.Description, Items: items}
	}
	return out
}
