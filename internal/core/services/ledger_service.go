package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/papillon-eventos/event_ledger_app/internal/utils/accounting"
)

// ledgerService is the only component that appends transactions to events.
// Balances are never stored; every query recomputes from the transaction
// list, so there is no cached state to go stale.
type ledgerService struct {
	store     *store.Store
	eventRepo portsrepo.EventRepositoryFacade
}

// NewLedgerService creates a new transaction ledger service.
func NewLedgerService(st *store.Store, eventRepo portsrepo.EventRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{store: st, eventRepo: eventRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) AppendTransaction(ctx context.Context, eventID string, req dto.AppendTransactionRequest) (*domain.Transaction, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}

	kind := domain.TransactionKind(req.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, req.Kind)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		return nil, fmt.Errorf("%w: transaction source is required", apperrors.ErrValidation)
	}

	destination := strings.TrimSpace(req.Destination)
	switch kind {
	case domain.Expense:
		if destination == "" {
			return nil, fmt.Errorf("%w: expense requires a destination", apperrors.ErrValidation)
		}
		balance := accounting.SourceBalance(event.Transactions, source)
		if req.Amount.GreaterThan(balance.Available) {
			return nil, fmt.Errorf("%w: source %q has %s available, expense is %s",
				apperrors.ErrInsufficientFunds, source, balance.Available, req.Amount)
		}
	case domain.Funding:
		// Funding entries have no payee.
		destination = ""
	}

	now := time.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		EventID:       eventID,
		Description:   strings.TrimSpace(req.Description),
		Amount:        req.Amount,
		Kind:          kind,
		Source:        source,
		Destination:   destination,
		OccurredAt:    occurredAt,
	}

	prev := event.Clone()
	event.Transactions = append(event.Transactions, txn)
	event.Touch(now)

	s.store.PutEvent(event)
	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		s.store.PutEvent(prev)
		return nil, fmt.Errorf("%w: appending transaction to event %s: %v", apperrors.ErrSync, eventID, err)
	}
	return &txn, nil
}

func (s *ledgerService) SourceBalance(ctx context.Context, eventID string, source string) (domain.SourceBalance, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return domain.SourceBalance{}, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return accounting.SourceBalance(event.Transactions, source), nil
}

func (s *ledgerService) EventBalance(ctx context.Context, eventID string) (domain.EventBalance, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return domain.EventBalance{}, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return accounting.EventBalance(event.Transactions), nil
}

func (s *ledgerService) ListSources(ctx context.Context, eventID string) ([]string, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return accounting.DistinctSources(event.Transactions), nil
}

func (s *ledgerService) ListSourceBalances(ctx context.Context, eventID string) ([]domain.SourceBalance, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	sources := accounting.DistinctSources(event.Transactions)
	balances := make([]domain.SourceBalance, len(sources))
	for i, source := range sources {
		balances[i] = accounting.SourceBalance(event.Transactions, source)
	}
	return balances, nil
}
