package services_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/core/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/repositories/database/memory"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSyncService_HydratePopulatesSnapshot(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()

	require.NoError(t, repos.ClientRepo.SaveClient(ctx, domain.Client{ClientID: "c1", Name: "Maria Silva"}))
	require.NoError(t, repos.EventRepo.SaveEvent(ctx, domain.Event{
		EventID: "e1",
		Name:    "Event for Maria Silva",
		Date:    time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Status:  domain.EventConfirmed,
		Transactions: []domain.Transaction{{
			TransactionID: "t1",
			EventID:       "e1",
			Description:   "Initial funding from accepted budget",
			Amount:        decimal.NewFromInt(5000),
			Kind:          domain.Funding,
			Source:        domain.SourceClient,
			OccurredAt:    time.Now(),
		}},
	}))
	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, domain.Budget{
		BudgetID: "b1", ClientID: "c1", Status: domain.BudgetPending,
		PricePerPerson: decimal.NewFromInt(100), Headcount: 50,
	}))
	require.NoError(t, repos.CatalogRepo.SavePaymentMethod(ctx, domain.PaymentMethod{PaymentMethodID: "pm1", Name: "Pix"}))
	require.NoError(t, repos.CatalogRepo.SaveExpenseItem(ctx, domain.ExpenseItem{ExpenseItemID: "ei1", Name: "Flowers"}))

	st := store.New()
	svc := services.NewSyncService(st, repos)

	require.NoError(t, svc.Hydrate(ctx))

	require.Len(t, st.ListClients(), 1)
	require.Len(t, st.ListBudgets(), 1)
	require.Len(t, st.ListPaymentMethods(), 1)
	require.Len(t, st.ListExpenseItems(), 1)

	event, ok := st.GetEvent("e1")
	require.True(t, ok)
	require.Len(t, event.Transactions, 1)
}

func TestSyncService_HydrateFailureLeavesSnapshotUntouched(t *testing.T) {
	ctx := context.Background()

	failingClients := new(MockClientRepository)
	failingClients.On("ListClients", ctx).Return(nil, fmt.Errorf("backend unreachable")).Once()

	repos := memory.NewRepositoryProvider()
	repos.ClientRepo = failingClients

	st := store.New()
	st.PutEvent(domain.Event{EventID: "existing", Name: "keep me", Status: domain.EventConfirmed})
	svc := services.NewSyncService(st, repos)

	err := svc.Hydrate(ctx)

	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrSync)
	_, ok := st.GetEvent("existing")
	require.True(t, ok, "a failed hydrate must not clear the current snapshot")
	failingClients.AssertExpectations(t)
}

func TestSyncService_DisconnectedRestartResumesFromSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshot.json")

	st := store.New()
	st.PutClient(domain.Client{ClientID: "c1", Name: "Maria Silva", EventIDs: []string{"e1"}})
	st.PutEvent(domain.Event{
		EventID:    "e1",
		Name:       "Event for Maria Silva",
		Date:       time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Status:     domain.EventConfirmed,
		ClientID:   "c1",
		ClientName: "Maria Silva",
		Transactions: []domain.Transaction{{
			TransactionID: "t1",
			EventID:       "e1",
			Description:   "Initial funding from accepted budget",
			Amount:        decimal.NewFromInt(5000),
			Kind:          domain.Funding,
			Source:        domain.SourceClient,
			OccurredAt:    time.Now(),
		}},
	})
	require.NoError(t, services.NewSyncService(st, memory.NewRepositoryProvider()).SaveSnapshot(path))

	// A restart starts from a fresh store and a blank in-memory backend.
	restarted := store.New()
	repos := memory.NewRepositoryProvider()
	svc := services.NewSyncService(restarted, repos)

	require.NoError(t, svc.LoadSnapshot(path))
	require.NoError(t, svc.SeedBackend(ctx))

	event, ok := restarted.GetEvent("e1")
	require.True(t, ok, "the restored event must survive startup")
	require.Len(t, event.Transactions, 1)

	seeded, err := repos.EventRepo.FindEventByID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, seeded.Transactions, 1)

	// Write-through must now reach the seeded backend instead of failing
	// against an empty one.
	ledger := services.NewLedgerService(restarted, repos.EventRepo)
	_, err = ledger.AppendTransaction(ctx, "e1", dto.AppendTransactionRequest{
		Description: "Florist deposit",
		Amount:      decimal.NewFromInt(800),
		Kind:        string(domain.Expense),
		Source:      domain.SourceClient,
		Destination: "florist",
	})
	require.NoError(t, err)

	persisted, err := repos.EventRepo.FindEventByID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, persisted.Transactions, 2)
}

func TestSyncService_SnapshotRoundTripThroughGateway(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	st := store.New()
	st.PutClient(domain.Client{ClientID: "c1", Name: "Maria Silva"})
	svc := services.NewSyncService(st, memory.NewRepositoryProvider())

	require.NoError(t, svc.SaveSnapshot(path))

	fresh := store.New()
	freshSvc := services.NewSyncService(fresh, memory.NewRepositoryProvider())
	require.NoError(t, freshSvc.LoadSnapshot(path))

	_, ok := fresh.GetClient("c1")
	require.True(t, ok)
}

func TestSyncService_LoadSnapshotMissingFileIsSyncError(t *testing.T) {
	svc := services.NewSyncService(store.New(), memory.NewRepositoryProvider())

	err := svc.LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrSync)
}
