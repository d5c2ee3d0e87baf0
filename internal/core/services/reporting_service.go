package services

import (
	"context"
	"fmt"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/papillon-eventos/event_ledger_app/internal/utils/accounting"
)

type reportingService struct {
	store *store.Store
}

// NewReportingService creates a new reporting service.
func NewReportingService(st *store.Store) portssvc.ReportingSvcFacade {
	return &reportingService{store: st}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) AggregateBalance(events []domain.Event) domain.EventBalance {
	var out domain.EventBalance
	for _, e := range events {
		b := accounting.EventBalance(e.Transactions)
		out.Funded = out.Funded.Add(b.Funded)
		out.Spent = out.Spent.Add(b.Spent)
	}
	out.Net = out.Funded.Sub(out.Spent)
	return out
}

func (s *reportingService) Summary(ctx context.Context) (domain.EventBalance, int, error) {
	events := s.store.ListEvents()
	return s.AggregateBalance(events), len(events), nil
}

func (s *reportingService) ExpensesByDestination(ctx context.Context, eventID string) ([]domain.GroupShare, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return accounting.GroupShares(event.Transactions, domain.Expense, func(t domain.Transaction) string {
		if t.Destination != "" {
			return t.Destination
		}
		return t.Description
	}), nil
}

func (s *reportingService) FundingBySource(ctx context.Context, eventID string) ([]domain.GroupShare, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return accounting.GroupShares(event.Transactions, domain.Funding, func(t domain.Transaction) string {
		return t.Source
	}), nil
}
