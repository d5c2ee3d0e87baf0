package services

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
)

// PaymentMethodSvc manages the payment method catalog.
type PaymentMethodSvc interface {
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error)
	GetPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id string) error
}

// ExpenseItemSvc manages the expense item (insumo) catalog.
type ExpenseItemSvc interface {
	CreateExpenseItem(ctx context.Context, req dto.CreateExpenseItemRequest) (*domain.ExpenseItem, error)
	GetExpenseItemByID(ctx context.Context, id string) (*domain.ExpenseItem, error)
	ListExpenseItems(ctx context.Context) ([]domain.ExpenseItem, error)
	UpdateExpenseItem(ctx context.Context, id string, req dto.UpdateExpenseItemRequest) (*domain.ExpenseItem, error)
	DeleteExpenseItem(ctx context.Context, id string) error
}

// CatalogSvcFacade combines both catalog services.
type CatalogSvcFacade interface {
	PaymentMethodSvc
	ExpenseItemSvc
}
