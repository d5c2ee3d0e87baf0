package dto

import (
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentMethodRequest defines the data for a payment method entry.
type CreatePaymentMethodRequest struct {
	Name   string          `json:"name" binding:"required,max=100"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date" binding:"required"`
}

// UpdatePaymentMethodRequest defines the data allowed for updates.
type UpdatePaymentMethodRequest struct {
	Name   *string          `json:"name"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	PaymentMethodID string          `json:"paymentMethodID"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// CreateExpenseItemRequest defines the data for an expense item entry.
type CreateExpenseItemRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
}

// UpdateExpenseItemRequest defines the data allowed for updates.
type UpdateExpenseItemRequest struct {
	Name          *string          `json:"name"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"paymentMethod"`
}

// ExpenseItemResponse defines the data returned for an expense item.
type ExpenseItemResponse struct {
	ExpenseItemID string          `json:"expenseItemID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToPaymentMethodResponse converts a domain payment method to its DTO.
func ToPaymentMethodResponse(pm *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: pm.PaymentMethodID,
		Name:            pm.Name,
		Amount:          pm.Amount,
		Date:            pm.Date,
		CreatedAt:       pm.CreatedAt,
		LastUpdatedAt:   pm.LastUpdatedAt,
	}
}

// ToListPaymentMethodResponse converts payment methods to DTOs.
func ToListPaymentMethodResponse(methods []domain.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, len(methods))
	for i, pm := range methods {
		out[i] = ToPaymentMethodResponse(&pm)
	}
	return out
}

// ToExpenseItemResponse converts a domain expense item to its DTO.
func ToExpenseItemResponse(item *domain.ExpenseItem) ExpenseItemResponse {
	return ExpenseItemResponse{
		ExpenseItemID: item.ExpenseItemID,
		Name:          item.Name,
		Amount:        item.Amount,
		PaymentMethod: item.PaymentMethod,
		CreatedAt:     item.CreatedAt,
		LastUpdatedAt: item.LastUpdatedAt,
	}
}

// ToListExpenseItemResponse converts expense items to DTOs.
func ToListExpenseItemResponse(items []domain.ExpenseItem) []ExpenseItemResponse {
	out := make([]ExpenseItemResponse, len(items))
	for i, item := range items {
		out[i] = ToExpenseItemResponse(&item)
	}
	return out
}
