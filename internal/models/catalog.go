package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the database row shape for a payment method entry.
type PaymentMethod struct {
	PaymentMethodID string          `json:"paymentMethodID"` // Primary Key (UUID)
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	AuditFields
}

// ExpenseItem is the database row shape for a supply catalog entry.
type ExpenseItem struct {
	ExpenseItemID string          `json:"expenseItemID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	AuditFields
}
