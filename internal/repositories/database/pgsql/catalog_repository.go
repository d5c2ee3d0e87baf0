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

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for the payment method
// and expense item catalogs.
func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

const paymentMethodColumns = `payment_method_id, name, amount, date, created_at, last_updated_at`

const expenseItemColumns = `expense_item_id, name, amount, payment_method, created_at, last_updated_at`

// SavePaymentMethod inserts a new payment method entry.
func (r *PgxCatalogRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := toModelPaymentMethod(method)
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentMethodID, m.Name, m.Amount, m.Date, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save payment method %s: %w", m.PaymentMethodID, err)
	}
	return nil
}

// FindPaymentMethodByID retrieves a payment method by its identifier.
func (r *PgxCatalogRepository) FindPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE payment_method_id = $1;`
	var m models.PaymentMethod
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&m.PaymentMethodID, &m.Name, &m.Amount, &m.Date, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment method %s: %w", id, err)
	}
	pm := toDomainPaymentMethod(m)
	return &pm, nil
}

// ListPaymentMethods retrieves all payment methods ordered by date.
func (r *PgxCatalogRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods ORDER BY date;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	modelMethods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PaymentMethod, error) {
		var m models.PaymentMethod
		err := row.Scan(&m.PaymentMethodID, &m.Name, &m.Amount, &m.Date, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment methods: %w", err)
	}

	methods := make([]domain.PaymentMethod, len(modelMethods))
	for i, m := range modelMethods {
		methods[i] = toDomainPaymentMethod(m)
	}
	return methods, nil
}

// UpdatePaymentMethod updates an existing payment method.
func (r *PgxCatalogRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := toModelPaymentMethod(method)
	query := `
		UPDATE payment_methods
		SET name = $2, amount = $3, date = $4, last_updated_at = $5
		WHERE payment_method_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.PaymentMethodID, m.Name, m.Amount, m.Date, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update payment method %s: %w", m.PaymentMethodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePaymentMethod removes the payment method record.
func (r *PgxCatalogRepository) DeletePaymentMethod(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payment_methods WHERE payment_method_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment method %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveExpenseItem inserts a new expense item entry.
func (r *PgxCatalogRepository) SaveExpenseItem(ctx context.Context, item domain.ExpenseItem) error {
	m := toModelExpenseItem(item)
	query := `
		INSERT INTO expense_items (` + expenseItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseItemID, m.Name, m.Amount, m.PaymentMethod, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save expense item %s: %w", m.ExpenseItemID, err)
	}
	return nil
}

// FindExpenseItemByID retrieves an expense item by its identifier.
func (r *PgxCatalogRepository) FindExpenseItemByID(ctx context.Context, id string) (*domain.ExpenseItem, error) {
	query := `SELECT ` + expenseItemColumns + ` FROM expense_items WHERE expense_item_id = $1;`
	var m models.ExpenseItem
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&m.ExpenseItemID, &m.Name, &m.Amount, &m.PaymentMethod, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense item %s: %w", id, err)
	}
	item := toDomainExpenseItem(m)
	return &item, nil
}

// ListExpenseItems retrieves all expense items ordered by name.
func (r *PgxCatalogRepository) ListExpenseItems(ctx context.Context) ([]domain.ExpenseItem, error) {
	query := `SELECT ` + expenseItemColumns + ` FROM expense_items ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseItem, error) {
		var m models.ExpenseItem
		err := row.Scan(&m.ExpenseItemID, &m.Name, &m.Amount, &m.PaymentMethod, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense items: %w", err)
	}

	items := make([]domain.ExpenseItem, len(modelItems))
	for i, m := range modelItems {
		items[i] = toDomainExpenseItem(m)
	}
	return items, nil
}

// UpdateExpenseItem updates an existing expense item.
func (r *PgxCatalogRepository) UpdateExpenseItem(ctx context.Context, item domain.ExpenseItem) error {
	m := toModelExpenseItem(item)
	query := `
		UPDATE expense_items
		SET name = $2, amount = $3, payment_method = $4, last_updated_at = $5
		WHERE expense_item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ExpenseItemID, m.Name, m.Amount, m.PaymentMethod, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update expense item %s: %w", m.ExpenseItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpenseItem removes the expense item record.
func (r *PgxCatalogRepository) DeleteExpenseItem(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expense_items WHERE expense_item_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
