package domain_test

import (
	"testing"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_TotalValue(t *testing.T) {
	tests := []struct {
		name   string
		budget domain.Budget
		want   decimal.Decimal
	}{
		{
			name: "whole numbers",
			budget: domain.Budget{
				PricePerPerson: decimal.NewFromInt(100),
				Headcount:      50,
			},
			want: decimal.NewFromInt(5000),
		},
		{
			name: "fractional price",
			budget: domain.Budget{
				PricePerPerson: decimal.NewFromFloat(99.99),
				Headcount:      3,
			},
			want: decimal.NewFromFloat(299.97),
		},
		{
			name:   "zero headcount",
			budget: domain.Budget{PricePerPerson: decimal.NewFromInt(100)},
			want:   decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.budget.TotalValue()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestBudget_Terminal(t *testing.T) {
	assert.False(t, domain.Budget{Status: domain.BudgetPending}.Terminal())
	assert.True(t, domain.Budget{Status: domain.BudgetAccepted}.Terminal())
	assert.True(t, domain.Budget{Status: domain.BudgetRejected}.Terminal())
}

func TestBudget_CloneIsDeep(t *testing.T) {
	deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b := domain.Budget{
		BudgetID: "b1",
		Deadline: &deadline,
		Staff:    []domain.Person{{Name: "Ana", Role: "chef"}},
		Menus: []domain.Menu{{
			Name:  "Dinner",
			Items: []domain.MenuItem{{Name: "Feijoada", Kind: domain.ItemFood}},
		}},
	}

	clone := b.Clone()
	*clone.Deadline = clone.Deadline.AddDate(0, 1, 0)
	clone.Staff[0].Name = "mutated"
	clone.Menus[0].Items[0].Name = "mutated"

	assert.True(t, deadline.Equal(*b.Deadline))
	assert.Equal(t, "Ana", b.Staff[0].Name)
	assert.Equal(t, "Feijoada", b.Menus[0].Items[0].Name)
}

func TestEvent_CloneIsolatesTransactions(t *testing.T) {
	e := domain.Event{
		EventID: "e1",
		Transactions: []domain.Transaction{{
			TransactionID: "t1",
			Amount:        decimal.NewFromInt(5000),
			Kind:          domain.Funding,
			Source:        domain.SourceClient,
		}},
	}

	clone := e.Clone()
	clone.Transactions = append(clone.Transactions, domain.Transaction{TransactionID: "t2"})
	clone.Transactions[0].Source = "mutated"

	assert.Len(t, e.Transactions, 1)
	assert.Equal(t, domain.SourceClient, e.Transactions[0].Source)
}
