package services

import (
	"context"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data.
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a specific budget by its unique identifier.
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves a paginated list of budgets, optionally
	// filtered by status.
	ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.Budget, error)
}

// BudgetLifecycleSvc owns the budget state machine. Pending is the only
// mutable state; Accepted and Rejected are terminal.
type BudgetLifecycleSvc interface {
	// CreateBudget opens a new pending quote, resolving its client through
	// the registry.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// UpdateBudget edits a pending budget. Terminal budgets fail with
	// apperrors.ErrInvalidTransition.
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// AcceptBudget converts a pending budget into a confirmed event seeded
	// with one funding transaction for the budget's total value. Exactly
	// one event is ever created per budget.
	AcceptBudget(ctx context.Context, budgetID string) (*domain.Event, error)

	// RejectBudget terminally rejects a pending budget. No event is created.
	RejectBudget(ctx context.Context, budgetID string) (*domain.Budget, error)

	// DeleteBudget removes the budget record.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetSvcFacade combines the budget interfaces.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetLifecycleSvc
}
