package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates the direction of a ledger entry. Amounts are
// always strictly positive; direction is carried here, never by sign.
type TransactionKind string

const (
	// Funding increases the available balance of a source.
	Funding TransactionKind = "FUNDING"
	// Expense draws down the available balance of a source.
	Expense TransactionKind = "EXPENSE"
)

// Valid reports whether the kind is one of the known values.
func (k TransactionKind) Valid() bool {
	return k == Funding || k == Expense
}

// SourceClient is the funding source attributed to the seed transaction of
// an event materialized from an accepted budget.
const SourceClient = "client"

// Transaction is a single immutable ledger entry of an event. Transactions
// are only ever appended; a correction is a new transaction, not an edit.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	EventID       string          `json:"eventID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // strictly positive
	Kind          TransactionKind `json:"kind"`
	// Source names the funding origin. For expenses it names the pool the
	// money is drawn from.
	Source string `json:"source"`
	// Destination is the payee. Empty for funding entries.
	Destination string    `json:"destination,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}
