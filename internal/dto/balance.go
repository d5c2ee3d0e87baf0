package dto

import (
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SourceBalanceResponse is the position of one funding source.
type SourceBalanceResponse struct {
	Source    string          `json:"source"`
	Total     decimal.Decimal `json:"total"`
	Spent     decimal.Decimal `json:"spent"`
	Available decimal.Decimal `json:"available"`
}

// EventBalanceResponse is the aggregate position of an event.
type EventBalanceResponse struct {
	Funded decimal.Decimal `json:"funded"`
	Spent  decimal.Decimal `json:"spent"`
	Net    decimal.Decimal `json:"net"`
}

// GroupShareResponse is one row of a grouped breakdown.
type GroupShareResponse struct {
	Key        string          `json:"key"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SummaryResponse is the portfolio-level balance across all events.
type SummaryResponse struct {
	Events     int                  `json:"events"`
	Balance    EventBalanceResponse `json:"balance"`
	LastUpdate time.Time            `json:"lastUpdate"`
}

// ToSourceBalanceResponse converts a domain source balance to its DTO.
func ToSourceBalanceResponse(b domain.SourceBalance) SourceBalanceResponse {
	return SourceBalanceResponse{
		Source:    b.Source,
		Total:     b.Total,
		Spent:     b.Spent,
		Available: b.Available,
	}
}

// ToListSourceBalanceResponse converts source balances in first-seen order.
func ToListSourceBalanceResponse(balances []domain.SourceBalance) []SourceBalanceResponse {
	out := make([]SourceBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = ToSourceBalanceResponse(b)
	}
	return out
}

// ToEventBalanceResponse converts a domain event balance to its DTO.
func ToEventBalanceResponse(b domain.EventBalance) EventBalanceResponse {
	return EventBalanceResponse{Funded: b.Funded, Spent: b.Spent, Net: b.Net}
}

// ToListGroupShareResponse converts grouped breakdown rows to DTOs.
func ToListGroupShareResponse(shares []domain.GroupShare) []GroupShareResponse {
	out := make([]GroupShareResponse, len(shares))
	for i, s := range shares {
		out[i] = GroupShareResponse{Key: s.Key, Total: s.Total, Percentage: s.Percentage}
	}
	return out
}
