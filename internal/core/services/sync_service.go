package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
)

type syncService struct {
	store *store.Store
	repos portsrepo.RepositoryProvider
}

// NewSyncService creates the sync gateway over the given backend surfaces.
func NewSyncService(st *store.Store, repos portsrepo.RepositoryProvider) portssvc.SyncSvcFacade {
	return &syncService{store: st, repos: repos}
}

var _ portssvc.SyncSvcFacade = (*syncService)(nil)

// Hydrate pulls everything from the backend first and only then swaps the
// local snapshot, so a fetch failure leaves the current state untouched.
func (s *syncService) Hydrate(ctx context.Context) error {
	clients, err := s.repos.ClientRepo.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching clients: %v", apperrors.ErrSync, err)
	}
	events, err := s.repos.EventRepo.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching events: %v", apperrors.ErrSync, err)
	}
	budgets, err := s.repos.BudgetRepo.ListBudgets(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching budgets: %v", apperrors.ErrSync, err)
	}
	methods, err := s.repos.CatalogRepo.ListPaymentMethods(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching payment methods: %v", apperrors.ErrSync, err)
	}
	items, err := s.repos.CatalogRepo.ListExpenseItems(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching expense items: %v", apperrors.ErrSync, err)
	}

	s.store.Reset(clients, events, budgets, methods, items)
	slog.Default().Info("local snapshot hydrated",
		slog.Int("clients", len(clients)),
		slog.Int("events", len(events)),
		slog.Int("budgets", len(budgets)),
		slog.Int("payment_methods", len(methods)),
		slog.Int("expense_items", len(items)))
	return nil
}

// SeedBackend writes every entity in the local snapshot to the backend.
// The backend is expected to be empty; a freshly started in-memory backend
// knows nothing about a restored snapshot until it is seeded, and every
// write-through would fail with a not-found error.
func (s *syncService) SeedBackend(ctx context.Context) error {
	for _, c := range s.store.ListClients() {
		if err := s.repos.ClientRepo.SaveClient(ctx, c); err != nil {
			return fmt.Errorf("%w: seeding client %s: %v", apperrors.ErrSync, c.ClientID, err)
		}
	}
	for _, e := range s.store.ListEvents() {
		if err := s.repos.EventRepo.SaveEvent(ctx, e); err != nil {
			return fmt.Errorf("%w: seeding event %s: %v", apperrors.ErrSync, e.EventID, err)
		}
	}
	for _, b := range s.store.ListBudgets() {
		if err := s.repos.BudgetRepo.SaveBudget(ctx, b); err != nil {
			return fmt.Errorf("%w: seeding budget %s: %v", apperrors.ErrSync, b.BudgetID, err)
		}
	}
	for _, pm := range s.store.ListPaymentMethods() {
		if err := s.repos.CatalogRepo.SavePaymentMethod(ctx, pm); err != nil {
			return fmt.Errorf("%w: seeding payment method %s: %v", apperrors.ErrSync, pm.PaymentMethodID, err)
		}
	}
	for _, item := range s.store.ListExpenseItems() {
		if err := s.repos.CatalogRepo.SaveExpenseItem(ctx, item); err != nil {
			return fmt.Errorf("%w: seeding expense item %s: %v", apperrors.ErrSync, item.ExpenseItemID, err)
		}
	}
	slog.Default().Info("backend seeded from local snapshot",
		slog.Int("clients", len(s.store.ListClients())),
		slog.Int("events", len(s.store.ListEvents())),
		slog.Int("budgets", len(s.store.ListBudgets())))
	return nil
}

func (s *syncService) SaveSnapshot(path string) error {
	if err := s.store.SaveSnapshot(path); err != nil {
		return fmt.Errorf("%w: saving snapshot: %v", apperrors.ErrSync, err)
	}
	return nil
}

func (s *syncService) LoadSnapshot(path string) error {
	if err := s.store.LoadSnapshot(path); err != nil {
		return fmt.Errorf("%w: loading snapshot: %v", apperrors.ErrSync, err)
	}
	return nil
}
