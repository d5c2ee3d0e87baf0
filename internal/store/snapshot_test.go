package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	src := store.New()
	src.PutClient(domain.Client{ClientID: "c1", Name: "Maria Silva", EventIDs: []string{"e1"}})
	src.PutEvent(newTestEvent("e1", "wedding"))
	deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	src.PutBudget(domain.Budget{
		BudgetID:       "b1",
		ClientID:       "c1",
		ClientName:     "Maria Silva",
		PricePerPerson: decimal.NewFromFloat(100.50),
		Headcount:      50,
		EventDate:      time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Deadline:       &deadline,
		Status:         domain.BudgetPending,
	})
	src.PutPaymentMethod(domain.PaymentMethod{PaymentMethodID: "pm1", Name: "Pix", Amount: decimal.NewFromInt(100)})
	src.PutExpenseItem(domain.ExpenseItem{ExpenseItemID: "ei1", Name: "Flowers", Amount: decimal.NewFromFloat(49.90)})

	require.NoError(t, src.SaveSnapshot(path))

	dst := store.New()
	require.NoError(t, dst.LoadSnapshot(path))

	client, ok := dst.GetClient("c1")
	require.True(t, ok)
	assert.Equal(t, "Maria Silva", client.Name)
	assert.Equal(t, []string{"e1"}, client.EventIDs)

	event, ok := dst.GetEvent("e1")
	require.True(t, ok)
	require.Len(t, event.Transactions, 1)
	assert.Equal(t, domain.SourceClient, event.Transactions[0].Source)
	assert.True(t, decimal.NewFromInt(5000).Equal(event.Transactions[0].Amount))

	budget, ok := dst.GetBudget("b1")
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(100.50).Equal(budget.PricePerPerson))
	require.NotNil(t, budget.Deadline)
	assert.True(t, deadline.Equal(*budget.Deadline))
	assert.True(t, decimal.NewFromFloat(5025).Equal(budget.TotalValue()))

	assert.Len(t, dst.ListPaymentMethods(), 1)
	assert.Len(t, dst.ListExpenseItems(), 1)
}

func TestSnapshot_LoadMissingFileFails(t *testing.T) {
	st := store.New()
	err := st.LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, st.LastUpdate().IsZero(), "a failed load must leave the store untouched")
}
