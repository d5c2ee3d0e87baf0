package domain

import "github.com/shopspring/decimal"

// SourceBalance is the financial position of one funding source within an
// event. Always recomputed from the transaction list, never stored.
type SourceBalance struct {
	Source    string          `json:"source"`
	Total     decimal.Decimal `json:"total"`     // sum of funding entries for the source
	Spent     decimal.Decimal `json:"spent"`     // sum of expenses drawn from the source
	Available decimal.Decimal `json:"available"` // total minus spent
}

// EventBalance is the aggregate financial position of an event across all
// sources. An event may be net-positive overall while one source is
// exhausted.
type EventBalance struct {
	Funded decimal.Decimal `json:"funded"`
	Spent  decimal.Decimal `json:"spent"`
	Net    decimal.Decimal `json:"net"`
}

// GroupShare is one row of a grouped breakdown: the total for a key and its
// share of the group total. Percentage is zero when the group total is zero.
type GroupShare struct {
	Key        string          `json:"key"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
}
