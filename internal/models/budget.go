package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the database row shape for a quote. Staff and Menus are
// persisted as jsonb columns. EventID is set once, when the budget is
// accepted and converted.
type Budget struct {
	BudgetID       string          `json:"budgetID"` // Primary Key (UUID)
	ClientID       string          `json:"clientID"` // FK -> Client.clientID
	ClientName     string          `json:"clientName"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	Headcount      int             `json:"headcount"`
	EventDate      time.Time       `json:"eventDate"`
	Deadline       *time.Time      `json:"deadline"` // Nullable
	Notes          string          `json:"notes"`
	Status         string          `json:"status"`
	EventID        string          `json:"eventID"` // Nullable until accepted
	Staff          []byte          `json:"-"`       // jsonb
	Menus          []byte          `json:"-"`       // jsonb
	AuditFields
}
