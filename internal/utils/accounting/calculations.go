package accounting

import (
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumByKind adds up the amounts of all transactions of the given kind.
// Order independent: amounts are strictly positive and decimal addition is
// exact.
func SumByKind(txns []domain.Transaction, kind domain.TransactionKind) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		if txn.Kind == kind {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum
}

// SourceBalance computes the position of a single funding source from the
// transaction list. Pure function, recomputed on every call so it can never
// go stale.
func SourceBalance(txns []domain.Transaction, source string) domain.SourceBalance {
	total := decimal.Zero
	spent := decimal.Zero
	for _, txn := range txns {
		if txn.Source != source {
			continue
		}
		switch txn.Kind {
		case domain.Funding:
			total = total.Add(txn.Amount)
		case domain.Expense:
			spent = spent.Add(txn.Amount)
		}
	}
	return domain.SourceBalance{
		Source:    source,
		Total:     total,
		Spent:     spent,
		Available: total.Sub(spent),
	}
}

// EventBalance computes the aggregate position across all sources.
func EventBalance(txns []domain.Transaction) domain.EventBalance {
	funded := SumByKind(txns, domain.Funding)
	spent := SumByKind(txns, domain.Expense)
	return domain.EventBalance{
		Funded: funded,
		Spent:  spent,
		Net:    funded.Sub(spent),
	}
}

// DistinctSources returns the funding sources referenced by the transaction
// list, in first-seen order. Only funding entries introduce a source; an
// expense against an unfunded source is rejected before it is ever appended.
func DistinctSources(txns []domain.Transaction) []string {
	seen := make(map[string]struct{})
	var sources []string
	for _, txn := range txns {
		if txn.Kind != domain.Funding || txn.Source == "" {
			continue
		}
		if _, ok := seen[txn.Source]; ok {
			continue
		}
		seen[txn.Source] = struct{}{}
		sources = append(sources, txn.Source)
	}
	return sources
}

// Percentage returns part as a percentage of total, rounded to two decimal
// places. A zero total yields zero rather than a division error.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
}

// GroupShares totals transactions of the given kind by key and reports each
// key's share of the group total, in first-seen key order.
func GroupShares(txns []domain.Transaction, kind domain.TransactionKind, keyOf func(domain.Transaction) string) []domain.GroupShare {
	totals := make(map[string]decimal.Decimal)
	var order []string
	groupTotal := decimal.Zero
	for _, txn := range txns {
		if txn.Kind != kind {
			continue
		}
		key := keyOf(txn)
		if key == "" {
			continue
		}
		if _, ok := totals[key]; !ok {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(txn.Amount)
		groupTotal = groupTotal.Add(txn.Amount)
	}
	shares := make([]domain.GroupShare, 0, len(order))
	for _, key := range order {
		shares = append(shares, domain.GroupShare{
			Key:        key,
			Total:      totals[key],
			Percentage: Percentage(totals[key], groupTotal),
		})
	}
	return shares
}
