package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is a catalog entry describing a payment channel the caterer
// accepts, with a reference amount and the date it was registered.
type PaymentMethod struct {
	PaymentMethodID string          `json:"paymentMethodID"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	AuditFields
}

// ExpenseItem is a catalog entry for a purchasable supply (insumo), tagged
// with the payment method normally used for it.
type ExpenseItem struct {
	ExpenseItemID string          `json:"expenseItemID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	AuditFields
}
