package repositories

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// PaymentMethodRepository defines the backend surface for the payment
// method catalog.
type PaymentMethodRepository interface {
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	FindPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id string) error
}

// ExpenseItemRepository defines the backend surface for the expense item
// (insumo) catalog.
type ExpenseItemRepository interface {
	SaveExpenseItem(ctx context.Context, item domain.ExpenseItem) error
	FindExpenseItemByID(ctx context.Context, id string) (*domain.ExpenseItem, error)
	ListExpenseItems(ctx context.Context) ([]domain.ExpenseItem, error)
	UpdateExpenseItem(ctx context.Context, item domain.ExpenseItem) error
	DeleteExpenseItem(ctx context.Context, id string) error
}

// CatalogRepositoryFacade combines both catalog surfaces.
type CatalogRepositoryFacade interface {
	PaymentMethodRepository
	ExpenseItemRepository
}
