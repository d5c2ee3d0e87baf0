package services

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// ReportingSvcFacade provides cross-event aggregation over the local
// snapshot. Everything here is a pure function of transaction lists; an
// event with no transactions contributes zero to every figure.
type ReportingSvcFacade interface {
	// AggregateBalance sums the balances of the given events.
	AggregateBalance(events []domain.Event) domain.EventBalance

	// Summary aggregates across every event in the snapshot and reports
	// the number of events included.
	Summary(ctx context.Context) (domain.EventBalance, int, error)

	// ExpensesByDestination groups an event's expenses by payee.
	ExpensesByDestination(ctx context.Context, eventID string) ([]domain.GroupShare, error)

	// FundingBySource groups an event's funding entries by source.
	FundingBySource(ctx context.Context, eventID string) ([]domain.GroupShare, error)
}
