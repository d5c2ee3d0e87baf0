package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// snapshotFile is the on-disk shape of a persisted local snapshot. Dates
// serialize as RFC 3339 strings and amounts as quoted decimal strings, so
// both round-trip exactly.
type snapshotFile struct {
	SavedAt        time.Time              `json:"savedAt"`
	Clients        []domain.Client        `json:"clients"`
	Events         []domain.Event         `json:"events"`
	Budgets        []domain.Budget        `json:"budgets"`
	PaymentMethods []domain.PaymentMethod `json:"paymentMethods"`
	ExpenseItems   []domain.ExpenseItem   `json:"expenseItems"`
}

// SaveSnapshot writes the whole store to path. The write goes through a
// temp file and rename so a crash mid-write never corrupts the previous
// snapshot.
func (s *Store) SaveSnapshot(path string) error {
	snap := snapshotFile{
		SavedAt:        time.Now().UTC(),
		Clients:        s.ListClients(),
		Events:         s.ListEvents(),
		Budgets:        s.ListBudgets(),
		PaymentMethods: s.ListPaymentMethods(),
		ExpenseItems:   s.ListExpenseItems(),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

// LoadSnapshot replaces the store contents with the snapshot at path,
// preserving the persisted ordering. A missing file is reported as an error
// so the caller can distinguish cold start from restore.
func (s *Store) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	s.Reset(snap.Clients, snap.Events, snap.Budgets, snap.PaymentMethods, snap.ExpenseItems)
	return nil
}
