package dto

import (
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AppendTransactionRequest defines the data needed to append a ledger entry
// to an event. Amount must be strictly positive; the service enforces that
// and the source-availability rule for expenses.
type AppendTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind" binding:"required,oneof=FUNDING EXPENSE"`
	Source      string          `json:"source" binding:"required"`
	Destination string          `json:"destination"`
	OccurredAt  *time.Time      `json:"occurredAt"` // defaults to now
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	EventID       string          `json:"eventID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	Source        string          `json:"source"`
	Destination   string          `json:"destination,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		EventID:       txn.EventID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Kind:          string(txn.Kind),
		Source:        txn.Source,
		Destination:   txn.Destination,
		OccurredAt:    txn.OccurredAt,
	}
}

// ToListTransactionResponse converts a transaction list, preserving append
// order.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(&txn)
	}
	return out
}
