package domain

import (
	"slices"
	"time"
)

// EventStatus indicates the state of a confirmed engagement.
type EventStatus string

const (
	EventPending   EventStatus = "PENDING"
	EventConfirmed EventStatus = "CONFIRMED"
	EventCanceled  EventStatus = "CANCELED"
	EventCompleted EventStatus = "COMPLETED"
)

// Valid reports whether the status is one of the known values.
func (s EventStatus) Valid() bool {
	switch s {
	case EventPending, EventConfirmed, EventCanceled, EventCompleted:
		return true
	}
	return false
}

// Event is a live financial record of an engagement. Its transaction list is
// the sole source of truth for its finances; there is no stored running
// balance. Transactions are insertion-ordered (append order, not necessarily
// chronological by timestamp).
type Event struct {
	EventID    string      `json:"eventID"`
	Name       string      `json:"name"`
	Date       time.Time   `json:"date"`
	Status     EventStatus `json:"status"`
	ClientID   string      `json:"clientID"`
	ClientName string      `json:"clientName"`
	Headcount  int         `json:"headcount,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Staff      []Person    `json:"staff,omitempty"`
	Menus      []Menu      `json:"menus,omitempty"`
	// Transactions is append-only. Mutate only through the ledger service.
	Transactions []Transaction `json:"transactions"`
	AuditFields
}

// Clone returns a deep copy safe to hand out or keep for rollback.
func (e Event) Clone() Event {
	out := e
	out.Staff = slices.Clone(e.Staff)
	out.Menus = cloneMenus(e.Menus)
	out.Transactions = slices.Clone(e.Transactions)
	return out
}
