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

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event and transaction data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, name, date, status, client_id, client_name, headcount, notes, staff, menus, created_at, last_updated_at`

const txnColumns = `transaction_id, event_id, description, amount, kind, source, destination, occurred_at, seq`

const insertTxnQuery = `
	INSERT INTO transactions (` + txnColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (transaction_id) DO NOTHING;
`

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Name,
		&m.Date,
		&m.Status,
		&m.ClientID,
		&m.ClientName,
		&m.Headcount,
		&m.Notes,
		&m.Staff,
		&m.Menus,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.EventID,
		&m.Description,
		&m.Amount,
		&m.Kind,
		&m.Source,
		&m.Destination,
		&m.OccurredAt,
		&m.Position,
	)
	return m, err
}

// SaveEvent persists a new event and its transactions in one DB transaction.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m, err := toModelEvent(event)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	eventQuery := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, eventQuery,
		m.EventID,
		m.Name,
		m.Date,
		m.Status,
		m.ClientID,
		m.ClientName,
		m.Headcount,
		m.Notes,
		m.Staff,
		m.Menus,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event %s: %w", m.EventID, err)
	}

	if err := insertTransactions(ctx, tx, event); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateEvent updates the event row and appends any transactions not yet
// persisted. Existing transaction rows are never touched.
func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m, err := toModelEvent(event)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	eventQuery := `
		UPDATE events
		SET name = $2, date = $3, status = $4, client_id = $5, client_name = $6,
			headcount = $7, notes = $8, staff = $9, menus = $10, last_updated_at = $11
		WHERE event_id = $1;
	`
	tag, err := tx.Exec(ctx, eventQuery,
		m.EventID,
		m.Name,
		m.Date,
		m.Status,
		m.ClientID,
		m.ClientName,
		m.Headcount,
		m.Notes,
		m.Staff,
		m.Menus,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertTransactions(ctx, tx, event); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// insertTransactions batch-inserts the event's transactions, skipping rows
// that already exist.
func insertTransactions(ctx context.Context, tx pgx.Tx, event domain.Event) error {
	if len(event.Transactions) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, txn := range event.Transactions {
		m := toModelTransaction(txn, i)
		batch.Queue(insertTxnQuery,
			m.TransactionID,
			m.EventID,
			m.Description,
			m.Amount,
			m.Kind,
			m.Source,
			m.Destination,
			m.OccurredAt,
			m.Position,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range event.Transactions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert transactions for event %s: %w", event.EventID, err)
		}
	}
	return results.Close()
}

// FindEventByID retrieves an event with its full transaction list.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	txns, err := r.listTransactions(ctx, eventID)
	if err != nil {
		return nil, err
	}

	event, err := toDomainEvent(m, txns)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents retrieves all events, newest date first, transactions included.
func (r *PgxEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}

	txnsByEvent, err := r.listAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, len(modelEvents))
	for i, m := range modelEvents {
		event, err := toDomainEvent(m, txnsByEvent[m.EventID])
		if err != nil {
			return nil, err
		}
		events[i] = event
	}
	return events, nil
}

// DeleteEvent removes the event and its transactions.
func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE event_id = $1;`, eventID); err != nil {
		return fmt.Errorf("failed to delete transactions for event %s: %w", eventID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

func (r *PgxEventRepository) listTransactions(ctx context.Context, eventID string) ([]models.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE event_id = $1 ORDER BY seq;`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for event %s: %w", eventID, err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for event %s: %w", eventID, err)
	}
	return txns, nil
}

func (r *PgxEventRepository) listAllTransactions(ctx context.Context) (map[string][]models.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions ORDER BY event_id, seq;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	byEvent := make(map[string][]models.Transaction)
	for _, t := range txns {
		byEvent[t.EventID] = append(byEvent[t.EventID], t)
	}
	return byEvent, nil
}
