package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus indicates the lifecycle state of a quote. Accepted and
// Rejected are terminal; there is no transition out of either.
type BudgetStatus string

const (
	BudgetPending  BudgetStatus = "PENDING"
	BudgetAccepted BudgetStatus = "ACCEPTED"
	BudgetRejected BudgetStatus = "REJECTED"
)

// Valid reports whether the status is one of the known values.
func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetPending, BudgetAccepted, BudgetRejected:
		return true
	}
	return false
}

// Budget is a quote for a prospective event, pending client approval.
// While pending it is freely editable; once terminal it is read-only.
type Budget struct {
	BudgetID       string          `json:"budgetID"`
	ClientID       string          `json:"clientID"`
	ClientName     string          `json:"clientName"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	Headcount      int             `json:"headcount"`
	EventDate      time.Time       `json:"eventDate"`
	Deadline       *time.Time      `json:"deadline,omitempty"` // acceptance deadline
	Notes          string          `json:"notes,omitempty"`
	Status         BudgetStatus    `json:"status"`
	// EventID links to the event materialized on acceptance. Empty until
	// then, never cleared afterwards.
	EventID string   `json:"eventID,omitempty"`
	Staff   []Person `json:"staff,omitempty"`
	Menus   []Menu   `json:"menus,omitempty"`
	AuditFields
}

// TotalValue is the quoted value of the engagement. It is always derived
// from per-person price and headcount; supplied totals are ignored.
func (b Budget) TotalValue() decimal.Decimal {
	return b.PricePerPerson.Mul(decimal.NewFromInt(int64(b.Headcount)))
}

// Terminal reports whether the budget can no longer change state.
func (b Budget) Terminal() bool {
	return b.Status == BudgetAccepted || b.Status == BudgetRejected
}

// Clone returns a deep copy safe to hand out or keep for rollback.
func (b Budget) Clone() Budget {
	out := b
	if b.Deadline != nil {
		d := *b.Deadline
		out.Deadline = &d
	}
	out.Staff = slices.Clone(b.Staff)
	out.Menus = cloneMenus(b.Menus)
	return out
}
