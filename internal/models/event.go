package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is the database row shape for an event. Staff and Menus are
// persisted as jsonb columns; transactions live in their own table.
type Event struct {
	EventID    string    `json:"eventID"` // Primary Key (UUID)
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	ClientID   string    `json:"clientID"` // FK -> Client.clientID
	ClientName string    `json:"clientName"`
	Headcount  int       `json:"headcount"`
	Notes      string    `json:"notes"`
	Staff      []byte    `json:"-"` // jsonb
	Menus      []byte    `json:"-"` // jsonb
	AuditFields
}

// Transaction is the database row shape for a ledger entry. Rows are
// insert-only; there is no update path for this table.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	EventID       string          `json:"eventID"`       // FK -> Event.eventID (Not Null)
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Positive value
	Kind          string          `json:"kind"`   // FUNDING or EXPENSE
	Source        string          `json:"source"`
	Destination   string          `json:"destination"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Position      int             `json:"position"` // append order within the event
}
