package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	"github.com/papillon-eventos/event_ledger_app/internal/models"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, client_id, client_name, price_per_person, headcount, event_date, deadline, notes, status, event_id, staff, menus, created_at, last_updated_at`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.ClientID,
		&m.ClientName,
		&m.PricePerPerson,
		&m.Headcount,
		&m.EventDate,
		&m.Deadline,
		&m.Notes,
		&m.Status,
		&m.EventID,
		&m.Staff,
		&m.Menus,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveBudget inserts a new budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m, err := toModelBudget(budget)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.ClientID,
		m.ClientName,
		m.PricePerPerson,
		m.Headcount,
		m.EventDate,
		m.Deadline,
		m.Notes,
		m.Status,
		m.EventID,
		m.Staff,
		m.Menus,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its unique identifier.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	budget, err := toDomainBudget(m)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// ListBudgets retrieves all budgets, newest first.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		return scanBudget(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}

	budgets := make([]domain.Budget, len(modelBudgets))
	for i, m := range modelBudgets {
		budget, err := toDomainBudget(m)
		if err != nil {
			return nil, err
		}
		budgets[i] = budget
	}
	return budgets, nil
}

// UpdateBudget updates an existing budget's details or status.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m, err := toModelBudget(budget)
	if err != nil {
		return err
	}
	query := `
		UPDATE budgets
		SET client_id = $2, client_name = $3, price_per_person = $4, headcount = $5,
			event_date = $6, deadline = $7, notes = $8, status = $9, event_id = $10,
			staff = $11, menus = $12, last_updated_at = $13
		WHERE budget_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.ClientID,
		m.ClientName,
		m.PricePerPerson,
		m.Headcount,
		m.EventDate,
		m.Deadline,
		m.Notes,
		m.Status,
		m.EventID,
		m.Staff,
		m.Menus,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", m.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes the budget record.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
