package services

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
)

// LedgerWriterSvc is the sole mutation path for event finances. There is no
// edit or delete for transactions anywhere in the system.
type LedgerWriterSvc interface {
	// AppendTransaction validates and appends a ledger entry to an event.
	// Expenses that would overdraw their funding source fail with
	// apperrors.ErrInsufficientFunds and leave the event untouched.
	AppendTransaction(ctx context.Context, eventID string, req dto.AppendTransactionRequest) (*domain.Transaction, error)
}

// LedgerReaderSvc exposes balance queries over the local snapshot. All of
// these are pure recomputations of the event's transaction list and never
// contact the backend.
type LedgerReaderSvc interface {
	// SourceBalance reports the position of one funding source.
	SourceBalance(ctx context.Context, eventID string, source string) (domain.SourceBalance, error)

	// EventBalance reports the aggregate position across all sources.
	EventBalance(ctx context.Context, eventID string) (domain.EventBalance, error)

	// ListSources reports the distinct funding sources in first-seen order.
	ListSources(ctx context.Context, eventID string) ([]string, error)

	// ListSourceBalances reports the position of every source in
	// first-seen order.
	ListSourceBalances(ctx context.Context, eventID string) ([]domain.SourceBalance, error)
}

// LedgerSvcFacade combines the ledger interfaces.
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
