package accounting_test

import (
	"testing"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func funding(source string, amount float64) domain.Transaction {
	return domain.Transaction{
		Kind:   domain.Funding,
		Source: source,
		Amount: decimal.NewFromFloat(amount),
	}
}

func expense(source, destination string, amount float64) domain.Transaction {
	return domain.Transaction{
		Kind:        domain.Expense,
		Source:      source,
		Destination: destination,
		Amount:      decimal.NewFromFloat(amount),
	}
}

func TestSumByKind(t *testing.T) {
	txns := []domain.Transaction{
		funding("client", 5000),
		expense("client", "butcher", 1200.50),
		funding("sponsor", 300),
		expense("sponsor", "florist", 99.99),
	}

	assert.True(t, decimal.NewFromFloat(5300).Equal(accounting.SumByKind(txns, domain.Funding)))
	assert.True(t, decimal.NewFromFloat(1300.49).Equal(accounting.SumByKind(txns, domain.Expense)))
	assert.True(t, decimal.Zero.Equal(accounting.SumByKind(nil, domain.Funding)))
}

func TestSourceBalance(t *testing.T) {
	txns := []domain.Transaction{
		funding("client", 5000),
		funding("client", 1000),
		expense("client", "butcher", 2500),
		funding("sponsor", 300),
		expense("sponsor", "florist", 50),
	}

	balance := accounting.SourceBalance(txns, "client")
	assert.Equal(t, "client", balance.Source)
	assert.True(t, decimal.NewFromFloat(6000).Equal(balance.Total))
	assert.True(t, decimal.NewFromFloat(2500).Equal(balance.Spent))
	assert.True(t, decimal.NewFromFloat(3500).Equal(balance.Available))
}

func TestSourceBalance_UnknownSourceIsZero(t *testing.T) {
	txns := []domain.Transaction{funding("client", 100)}

	balance := accounting.SourceBalance(txns, "sponsor")
	assert.True(t, balance.Total.IsZero())
	assert.True(t, balance.Spent.IsZero())
	assert.True(t, balance.Available.IsZero())
}

func TestEventBalance(t *testing.T) {
	txns := []domain.Transaction{
		funding("client", 5000),
		expense("client", "butcher", 1200),
		expense("client", "florist", 300),
	}

	balance := accounting.EventBalance(txns)
	assert.True(t, decimal.NewFromFloat(5000).Equal(balance.Funded))
	assert.True(t, decimal.NewFromFloat(1500).Equal(balance.Spent))
	assert.True(t, decimal.NewFromFloat(3500).Equal(balance.Net))
}

func TestEventBalance_NetCanGoNegativeAcrossSources(t *testing.T) {
	// Per-source overdrafts are rejected at append time, but the aggregate
	// is a plain sum and reports whatever the ledger holds.
	txns := []domain.Transaction{
		funding("client", 100),
		expense("client", "butcher", 100),
		expense("sponsor", "florist", 40),
	}

	balance := accounting.EventBalance(txns)
	assert.True(t, decimal.NewFromFloat(-40).Equal(balance.Net))
}

func TestDistinctSources_FirstSeenOrder(t *testing.T) {
	txns := []domain.Transaction{
		funding("client", 100),
		funding("sponsor", 50),
		expense("client", "butcher", 10),
		funding("client", 25),
		funding("venue", 75),
	}

	assert.Equal(t, []string{"client", "sponsor", "venue"}, accounting.DistinctSources(txns))
	assert.Empty(t, accounting.DistinctSources(nil))
}

func TestPercentage(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(25).Equal(accounting.Percentage(decimal.NewFromInt(1), decimal.NewFromInt(4))))
	assert.True(t, decimal.NewFromFloat(33.33).Equal(accounting.Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3))))
	assert.True(t, decimal.Zero.Equal(accounting.Percentage(decimal.NewFromInt(10), decimal.Zero)))
}

func TestGroupShares_ByDestination(t *testing.T) {
	txns := []domain.Transaction{
		expense("client", "butcher", 600),
		expense("client", "florist", 300),
		expense("sponsor", "butcher", 100),
		funding("client", 5000),
	}

	shares := accounting.GroupShares(txns, domain.Expense, func(txn domain.Transaction) string {
		return txn.Destination
	})

	assert.Len(t, shares, 2)
	assert.Equal(t, "butcher", shares[0].Key)
	assert.True(t, decimal.NewFromFloat(700).Equal(shares[0].Total))
	assert.True(t, decimal.NewFromFloat(70).Equal(shares[0].Percentage))
	assert.Equal(t, "florist", shares[1].Key)
	assert.True(t, decimal.NewFromFloat(30).Equal(shares[1].Percentage))
}

func TestGroupShares_SkipsEmptyKeys(t *testing.T) {
	txns := []domain.Transaction{
		expense("client", "", 100),
		expense("client", "butcher", 100),
	}

	shares := accounting.GroupShares(txns, domain.Expense, func(txn domain.Transaction) string {
		return txn.Destination
	})

	assert.Len(t, shares, 1)
	assert.Equal(t, "butcher", shares[0].Key)
	assert.True(t, decimal.NewFromFloat(100).Equal(shares[0].Percentage))
}
