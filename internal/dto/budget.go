package dto

import (
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to open a quote. The total
// value is always derived as pricePerPerson times headcount; a supplied
// total is not part of the contract.
type CreateBudgetRequest struct {
	Client         ClientReference `json:"client" binding:"required"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	Headcount      int             `json:"headcount" binding:"required,gt=0"`
	EventDate      time.Time       `json:"eventDate" binding:"required"`
	Deadline       *time.Time      `json:"deadline"`
	Notes          string          `json:"notes"`
	Staff          []PersonPayload `json:"staff" binding:"dive"`
	Menus          []MenuPayload   `json:"menus" binding:"dive"`
}

// UpdateBudgetRequest defines the data allowed for updating a pending
// budget. Pointers distinguish omitted fields from explicit zero values.
// JSON null decodes to a nil pointer and reads as omitted, so a set
// deadline can be moved but not cleared through this payload. Notes can be
// cleared with an explicit "".
type UpdateBudgetRequest struct {
	Client         *ClientReference `json:"client"`
	PricePerPerson *decimal.Decimal `json:"pricePerPerson"`
	Headcount      *int             `json:"headcount"`
	EventDate      *time.Time       `json:"eventDate"`
	Deadline       *time.Time       `json:"deadline"`
	Notes          *string          `json:"notes"`
	Staff          []PersonPayload  `json:"staff" binding:"dive"`
	Menus          []MenuPayload    `json:"menus" binding:"dive"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID       string          `json:"budgetID"`
	ClientID       string          `json:"clientID"`
	ClientName     string          `json:"clientName"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	Headcount      int             `json:"headcount"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	EventDate      time.Time       `json:"eventDate"`
	Deadline       *time.Time      `json:"deadline,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         string          `json:"status"`
	EventID        string          `json:"eventID,omitempty"`
	Staff          []PersonPayload `json:"staff,omitempty"`
	Menus          []MenuPayload   `json:"menus,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:       b.BudgetID,
		ClientID:       b.ClientID,
		ClientName:     b.ClientName,
		PricePerPerson: b.PricePerPerson,
		Headcount:      b.Headcount,
		TotalValue:     b.TotalValue(),
		EventDate:      b.EventDate,
		Deadline:       b.Deadline,
		Notes:          b.Notes,
		Status:         string(b.Status),
		EventID:        b.EventID,
		Staff:          toPersonPayloads(b.Staff),
		Menus:          toMenuPayloads(b.Menus),
		CreatedAt:      b.CreatedAt,
		LastUpdatedAt:  b.LastUpdatedAt,
	}
}

// ToListBudgetsResponse converts domain budgets to the list response DTO.
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	out := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = ToBudgetResponse(&b)
	}
	return ListBudgetsResponse{Budgets: out}
}
