package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
)

type catalogService struct {
	store       *store.Store
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st *store.Store, catalogRepo portsrepo.CatalogRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{store: st, catalogRepo: catalogRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: payment method name is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment method amount cannot be negative", apperrors.ErrValidation)
	}

	method := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		Name:            name,
		Amount:          req.Amount,
		Date:            req.Date,
	}
	method.Touch(time.Now())

	s.store.PutPaymentMethod(method)
	if err := s.catalogRepo.SavePaymentMethod(ctx, method); err != nil {
		s.store.RemovePaymentMethod(method.PaymentMethodID)
		return nil, fmt.Errorf("%w: saving payment method %s: %v", apperrors.ErrSync, method.PaymentMethodID, err)
	}
	return &method, nil
}

func (s *catalogService) GetPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	method, ok := s.store.GetPaymentMethod(id)
	if !ok {
		return nil, fmt.Errorf("%w: payment method %s", apperrors.ErrNotFound, id)
	}
	return &method, nil
}

func (s *catalogService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.store.ListPaymentMethods(), nil
}

func (s *catalogService) UpdatePaymentMethod(ctx context.Context, id string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	method, ok := s.store.GetPaymentMethod(id)
	if !ok {
		return nil, fmt.Errorf("%w: payment method %s", apperrors.ErrNotFound, id)
	}
	prev := method

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: payment method name cannot be blank", apperrors.ErrValidation)
		}
		method.Name = name
	}
	if req.Amount != nil {
		if req.Amount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: payment method amount cannot be negative", apperrors.ErrValidation)
		}
		method.Amount = *req.Amount
	}
	if req.Date != nil {
		method.Date = *req.Date
	}
	method.Touch(time.Now())

	s.store.PutPaymentMethod(method)
	if err := s.catalogRepo.UpdatePaymentMethod(ctx, method); err != nil {
		s.store.PutPaymentMethod(prev)
		return nil, fmt.Errorf("%w: updating payment method %s: %v", apperrors.ErrSync, id, err)
	}
	return &method, nil
}

func (s *catalogService) DeletePaymentMethod(ctx context.Context, id string) error {
	method, ok := s.store.GetPaymentMethod(id)
	if !ok {
		return fmt.Errorf("%w: payment method %s", apperrors.ErrNotFound, id)
	}

	pos := s.store.RemovePaymentMethod(id)
	if err := s.catalogRepo.DeletePaymentMethod(ctx, id); err != nil {
		s.store.RestorePaymentMethod(method, pos)
		return fmt.Errorf("%w: deleting payment method %s: %v", apperrors.ErrSync, id, err)
	}
	return nil
}

func (s *catalogService) CreateExpenseItem(ctx context.Context, req dto.CreateExpenseItemRequest) (*domain.ExpenseItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: expense item name is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense item amount cannot be negative", apperrors.ErrValidation)
	}

	item := domain.ExpenseItem{
		ExpenseItemID: uuid.NewString(),
		Name:          name,
		Amount:        req.Amount,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
	}
	item.Touch(time.Now())

	s.store.PutExpenseItem(item)
	if err := s.catalogRepo.SaveExpenseItem(ctx, item); err != nil {
		s.store.RemoveExpenseItem(item.ExpenseItemID)
		return nil, fmt.Errorf("%w: saving expense item %s: %v", apperrors.ErrSync, item.ExpenseItemID, err)
	}
	return &item, nil
}

func (s *catalogService) GetExpenseItemByID(ctx context.Context, id string) (*domain.ExpenseItem, error) {
	item, ok := s.store.GetExpenseItem(id)
	if !ok {
		return nil, fmt.Errorf("%w: expense item %s", apperrors.ErrNotFound, id)
	}
	return &item, nil
}

func (s *catalogService) ListExpenseItems(ctx context.Context) ([]domain.ExpenseItem, error) {
	return s.store.ListExpenseItems(), nil
}

func (s *catalogService) UpdateExpenseItem(ctx context.Context, id string, req dto.UpdateExpenseItemRequest) (*domain.ExpenseItem, error) {
	item, ok := s.store.GetExpenseItem(id)
	if !ok {
		return nil, fmt.Errorf("%w: expense item %s", apperrors.ErrNotFound, id)
	}
	prev := item

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: expense item name cannot be blank", apperrors.ErrValidation)
		}
		item.Name = name
	}
	if req.Amount != nil {
		if req.Amount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense item amount cannot be negative", apperrors.ErrValidation)
		}
		item.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		item.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}
	item.Touch(time.Now())

	s.store.PutExpenseItem(item)
	if err := s.catalogRepo.UpdateExpenseItem(ctx, item); err != nil {
		s.store.PutExpenseItem(prev)
		return nil, fmt.Errorf("%w: updating expense item %s: %v", apperrors.ErrSync, id, err)
	}
	return &item, nil
}

func (s *catalogService) DeleteExpenseItem(ctx context.Context, id string) error {
	item, ok := s.store.GetExpenseItem(id)
	if !ok {
		return fmt.Errorf("%w: expense item %s", apperrors.ErrNotFound, id)
	}

	pos := s.store.RemoveExpenseItem(id)
	if err := s.catalogRepo.DeleteExpenseItem(ctx, id); err != nil {
		s.store.RestoreExpenseItem(item, pos)
		return fmt.Errorf("%w: deleting expense item %s: %v", apperrors.ErrSync, id, err)
	}
	return nil
}
