package store_test

import (
	"testing"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(id, name string) domain.Event {
	return domain.Event{
		EventID: id,
		Name:    name,
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Status:  domain.EventConfirmed,
		Transactions: []domain.Transaction{{
			TransactionID: id + "-txn-1",
			EventID:       id,
			Description:   "Initial funding",
			Amount:        decimal.NewFromInt(5000),
			Kind:          domain.Funding,
			Source:        domain.SourceClient,
			OccurredAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		}},
	}
}

func TestStore_PutGetRemoveClient(t *testing.T) {
	st := store.New()

	c := domain.Client{ClientID: "c1", Name: "Maria Silva", EventIDs: []string{"e1"}}
	st.PutClient(c)

	got, ok := st.GetClient("c1")
	require.True(t, ok)
	assert.Equal(t, "Maria Silva", got.Name)

	_, ok = st.GetClient("missing")
	assert.False(t, ok)

	st.RemoveClient("c1")
	_, ok = st.GetClient("c1")
	assert.False(t, ok)
}

func TestStore_GetClientReturnsCopy(t *testing.T) {
	st := store.New()
	st.PutClient(domain.Client{ClientID: "c1", Name: "Maria Silva", EventIDs: []string{"e1"}})

	got, ok := st.GetClient("c1")
	require.True(t, ok)
	got.Name = "mutated"
	got.EventIDs[0] = "mutated"

	again, ok := st.GetClient("c1")
	require.True(t, ok)
	assert.Equal(t, "Maria Silva", again.Name)
	assert.Equal(t, []string{"e1"}, again.EventIDs)
}

func TestStore_FindClientByName_ExactMatchOnly(t *testing.T) {
	st := store.New()
	st.PutClient(domain.Client{ClientID: "c1", Name: "Maria Silva"})

	_, ok := st.FindClientByName("maria silva")
	assert.False(t, ok, "name matching is case sensitive")

	got, ok := st.FindClientByName("Maria Silva")
	require.True(t, ok)
	assert.Equal(t, "c1", got.ClientID)
}

func TestStore_PutPreservesInsertionOrder(t *testing.T) {
	st := store.New()
	st.PutEvent(newTestEvent("e1", "first"))
	st.PutEvent(newTestEvent("e2", "second"))

	// Replacing an entry keeps its original position.
	updated := newTestEvent("e1", "first updated")
	st.PutEvent(updated)

	events := st.ListEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].EventID)
	assert.Equal(t, "first updated", events[0].Name)
	assert.Equal(t, "e2", events[1].EventID)
}

func TestStore_GetEventClonesTransactions(t *testing.T) {
	st := store.New()
	st.PutEvent(newTestEvent("e1", "wedding"))

	got, ok := st.GetEvent("e1")
	require.True(t, ok)
	got.Transactions[0].Description = "mutated"
	got.Transactions = append(got.Transactions, domain.Transaction{TransactionID: "rogue"})

	again, ok := st.GetEvent("e1")
	require.True(t, ok)
	require.Len(t, again.Transactions, 1)
	assert.Equal(t, "Initial funding", again.Transactions[0].Description)
}

func TestStore_LastUpdateAdvancesOnMutation(t *testing.T) {
	st := store.New()
	assert.True(t, st.LastUpdate().IsZero())

	st.PutBudget(domain.Budget{BudgetID: "b1", Status: domain.BudgetPending})
	first := st.LastUpdate()
	assert.False(t, first.IsZero())

	st.RemoveBudget("b1")
	assert.False(t, st.LastUpdate().Before(first))
}

func TestStore_RemoveReportsInsertionIndex(t *testing.T) {
	st := store.New()
	st.PutEvent(newTestEvent("e1", "first"))
	st.PutEvent(newTestEvent("e2", "second"))
	st.PutEvent(newTestEvent("e3", "third"))

	assert.Equal(t, 1, st.RemoveEvent("e2"))
	assert.Equal(t, -1, st.RemoveEvent("e2"))
}

func TestStore_RestoreEventKeepsPosition(t *testing.T) {
	st := store.New()
	st.PutEvent(newTestEvent("e1", "first"))
	st.PutEvent(newTestEvent("e2", "second"))
	st.PutEvent(newTestEvent("e3", "third"))

	middle, ok := st.GetEvent("e2")
	require.True(t, ok)
	pos := st.RemoveEvent("e2")
	st.RestoreEvent(middle, pos)

	events := st.ListEvents()
	require.Len(t, events, 3)
	assert.Equal(t, "e1", events[0].EventID)
	assert.Equal(t, "e2", events[1].EventID)
	assert.Equal(t, "e3", events[2].EventID)

	// An out-of-range position falls back to appending.
	st.RemoveEvent("e1")
	st.RestoreEvent(newTestEvent("e1", "first"), 99)
	events = st.ListEvents()
	assert.Equal(t, "e1", events[len(events)-1].EventID)
}

func TestStore_RemoveMissingIsNoOp(t *testing.T) {
	st := store.New()
	st.PutClient(domain.Client{ClientID: "c1", Name: "Maria Silva"})
	before := st.LastUpdate()

	st.RemoveEvent("missing")
	st.RemoveClient("missing")

	assert.Equal(t, before, st.LastUpdate())
	assert.Len(t, st.ListClients(), 1)
}

func TestStore_ResetReplacesEverything(t *testing.T) {
	st := store.New()
	st.PutClient(domain.Client{ClientID: "old", Name: "Old Client"})
	st.PutEvent(newTestEvent("old-event", "stale"))

	st.Reset(
		[]domain.Client{{ClientID: "c1", Name: "Maria Silva"}},
		[]domain.Event{newTestEvent("e1", "wedding")},
		[]domain.Budget{{BudgetID: "b1", Status: domain.BudgetPending}},
		[]domain.PaymentMethod{{PaymentMethodID: "pm1", Name: "Pix"}},
		[]domain.ExpenseItem{{ExpenseItemID: "ei1", Name: "Flowers"}},
	)

	_, ok := st.GetClient("old")
	assert.False(t, ok)
	_, ok = st.GetEvent("old-event")
	assert.False(t, ok)

	assert.Len(t, st.ListClients(), 1)
	assert.Len(t, st.ListEvents(), 1)
	assert.Len(t, st.ListBudgets(), 1)
	assert.Len(t, st.ListPaymentMethods(), 1)
	assert.Len(t, st.ListExpenseItems(), 1)
}
