// Package store holds the local in-memory snapshot of all entities the
// engine operates on. It is pure data with message-style operations: no
// business rules live here, only storage, insertion order and the
// last-update marker. Services own all validation and lifecycle logic.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
)

// Store is the local snapshot. The engine assumes a single logical writer;
// the mutex only guards against torn reads from the HTTP layer, it is not a
// transaction-isolation mechanism.
type Store struct {
	mu sync.RWMutex

	clients     map[string]domain.Client
	clientOrder []string

	events     map[string]domain.Event
	eventOrder []string

	budgets     map[string]domain.Budget
	budgetOrder []string

	paymentMethods     map[string]domain.PaymentMethod
	paymentMethodOrder []string

	expenseItems     map[string]domain.ExpenseItem
	expenseItemOrder []string

	lastUpdate time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		clients:        make(map[string]domain.Client),
		events:         make(map[string]domain.Event),
		budgets:        make(map[string]domain.Budget),
		paymentMethods: make(map[string]domain.PaymentMethod),
		expenseItems:   make(map[string]domain.ExpenseItem),
	}
}

// LastUpdate returns the timestamp of the most recent mutation. Dependent
// views use it to invalidate cached derivations.
func (s *Store) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}

// markUpdated must be called with the write lock held.
func (s *Store) markUpdated() {
	s.lastUpdate = time.Now()
}

// --- Clients ---

// PutClient inserts or replaces a client, keeping its original insertion
// position.
func (s *Store) PutClient(c domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.ClientID]; !ok {
		s.clientOrder = append(s.clientOrder, c.ClientID)
	}
	s.clients[c.ClientID] = c.Clone()
	s.markUpdated()
}

// GetClient returns a copy of the client, if present.
func (s *Store) GetClient(clientID string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[clientID]
	if !ok {
		return domain.Client{}, false
	}
	return c.Clone(), true
}

// FindClientByName returns the client with the exact display name, if any.
func (s *Store) FindClientByName(name string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.clientOrder {
		if c, ok := s.clients[id]; ok && c.Name == name {
			return c.Clone(), true
		}
	}
	return domain.Client{}, false
}

// RemoveClient deletes the client and returns its insertion index so a
// rollback can reinstate it in place. Returns -1 if it is not present.
func (s *Store) RemoveClient(clientID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[clientID]; !ok {
		return -1
	}
	delete(s.clients, clientID)
	idx := slices.Index(s.clientOrder, clientID)
	s.clientOrder = slices.Delete(s.clientOrder, idx, idx+1)
	s.markUpdated()
	return idx
}

// RestoreClient reinstates a removed client at its previous insertion
// index. Out-of-range positions append at the tail.
func (s *Store) RestoreClient(c domain.Client, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.ClientID]; !ok {
		if pos < 0 || pos > len(s.clientOrder) {
			pos = len(s.clientOrder)
		}
		s.clientOrder = slices.Insert(s.clientOrder, pos, c.ClientID)
	}
	s.clients[c.ClientID] = c.Clone()
	s.markUpdated()
}

// ListClients returns copies of all clients in insertion order.
func (s *Store) ListClients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, 0, len(s.clientOrder))
	for _, id := range s.clientOrder {
		if c, ok := s.clients[id]; ok {
			out = append(out, c.Clone())
		}
	}
	return out
}

// --- Events ---

// PutEvent inserts or replaces an event, keeping its original insertion
// position.
func (s *Store) PutEvent(e domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.EventID]; !ok {
		s.eventOrder = append(s.eventOrder, e.EventID)
	}
	s.events[e.EventID] = e.Clone()
	s.markUpdated()
}

// GetEvent returns a copy of the event, if present.
func (s *Store) GetEvent(eventID string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[eventID]
	if !ok {
		return domain.Event{}, false
	}
	return e.Clone(), true
}

// RemoveEvent deletes the event and returns its insertion index so a
// rollback can reinstate it in place. Returns -1 if it is not present.
func (s *Store) RemoveEvent(eventID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return -1
	}
	delete(s.events, eventID)
	idx := slices.Index(s.eventOrder, eventID)
	s.eventOrder = slices.Delete(s.eventOrder, idx, idx+1)
	s.markUpdated()
	return idx
}

// RestoreEvent reinstates a removed event at its previous insertion index.
// Out-of-range positions append at the tail.
func (s *Store) RestoreEvent(e domain.Event, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.EventID]; !ok {
		if pos < 0 || pos > len(s.eventOrder) {
			pos = len(s.eventOrder)
		}
		s.eventOrder = slices.Insert(s.eventOrder, pos, e.EventID)
	}
	s.events[e.EventID] = e.Clone()
	s.markUpdated()
}

// ListEvents returns copies of all events in insertion order.
func (s *Store) ListEvents() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		if e, ok := s.events[id]; ok {
			out = append(out, e.Clone())
		}
	}
	return out
}

// --- Budgets ---

// PutBudget inserts or replaces a budget, keeping its original insertion
// position.
func (s *Store) PutBudget(b domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[b.BudgetID]; !ok {
		s.budgetOrder = append(s.budgetOrder, b.BudgetID)
	}
	s.budgets[b.BudgetID] = b.Clone()
	s.markUpdated()
}

// GetBudget returns a copy of the budget, if present.
func (s *Store) GetBudget(budgetID string) (domain.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.budgets[budgetID]
	if !ok {
		return domain.Budget{}, false
	}
	return b.Clone(), true
}

// RemoveBudget deletes the budget and returns its insertion index so a
// rollback can reinstate it in place. Returns -1 if it is not present.
func (s *Store) RemoveBudget(budgetID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[budgetID]; !ok {
		return -1
	}
	delete(s.budgets, budgetID)
	idx := slices.Index(s.budgetOrder, budgetID)
	s.budgetOrder = slices.Delete(s.budgetOrder, idx, idx+1)
	s.markUpdated()
	return idx
}

// RestoreBudget reinstates a removed budget at its previous insertion
// index. Out-of-range positions append at the tail.
func (s *Store) RestoreBudget(b domain.Budget, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[b.BudgetID]; !ok {
		if pos < 0 || pos > len(s.budgetOrder) {
			pos = len(s.budgetOrder)
		}
		s.budgetOrder = slices.Insert(s.budgetOrder, pos, b.BudgetID)
	}
	s.budgets[b.BudgetID] = b.Clone()
	s.markUpdated()
}

// ListBudgets returns copies of all budgets in insertion order.
func (s *Store) ListBudgets() []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Budget, 0, len(s.budgetOrder))
	for _, id := range s.budgetOrder {
		if b, ok := s.budgets[id]; ok {
			out = append(out, b.Clone())
		}
	}
	return out
}

// --- Payment method catalog ---

func (s *Store) PutPaymentMethod(pm domain.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.paymentMethods[pm.PaymentMethodID]; !ok {
		s.paymentMethodOrder = append(s.paymentMethodOrder, pm.PaymentMethodID)
	}
	s.paymentMethods[pm.PaymentMethodID] = pm
	s.markUpdated()
}

func (s *Store) GetPaymentMethod(id string) (domain.PaymentMethod, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pm, ok := s.paymentMethods[id]
	return pm, ok
}

func (s *Store) RemovePaymentMethod(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.paymentMethods[id]; !ok {
		return -1
	}
	delete(s.paymentMethods, id)
	idx := slices.Index(s.paymentMethodOrder, id)
	s.paymentMethodOrder = slices.Delete(s.paymentMethodOrder, idx, idx+1)
	s.markUpdated()
	return idx
}

func (s *Store) RestorePaymentMethod(pm domain.PaymentMethod, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.paymentMethods[pm.PaymentMethodID]; !ok {
		if pos < 0 || pos > len(s.paymentMethodOrder) {
			pos = len(s.paymentMethodOrder)
		}
		s.paymentMethodOrder = slices.Insert(s.paymentMethodOrder, pos, pm.PaymentMethodID)
	}
	s.paymentMethods[pm.PaymentMethodID] = pm
	s.markUpdated()
}

func (s *Store) ListPaymentMethods() []domain.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PaymentMethod, 0, len(s.paymentMethodOrder))
	for _, id := range s.paymentMethodOrder {
		if pm, ok := s.paymentMethods[id]; ok {
			out = append(out, pm)
		}
	}
	return out
}

// --- Expense item catalog ---

func (s *Store) PutExpenseItem(item domain.ExpenseItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenseItems[item.ExpenseItemID]; !ok {
		s.expenseItemOrder = append(s.expenseItemOrder, item.ExpenseItemID)
	}
	s.expenseItems[item.ExpenseItemID] = item
	s.markUpdated()
}

func (s *Store) GetExpenseItem(id string) (domain.ExpenseItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.expenseItems[id]
	return item, ok
}

func (s *Store) RemoveExpenseItem(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenseItems[id]; !ok {
		return -1
	}
	delete(s.expenseItems, id)
	idx := slices.Index(s.expenseItemOrder, id)
	s.expenseItemOrder = slices.Delete(s.expenseItemOrder, idx, idx+1)
	s.markUpdated()
	return idx
}

func (s *Store) RestoreExpenseItem(item domain.ExpenseItem, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenseItems[item.ExpenseItemID]; !ok {
		if pos < 0 || pos > len(s.expenseItemOrder) {
			pos = len(s.expenseItemOrder)
		}
		s.expenseItemOrder = slices.Insert(s.expenseItemOrder, pos, item.ExpenseItemID)
	}
	s.expenseItems[item.ExpenseItemID] = item
	s.markUpdated()
}

func (s *Store) ListExpenseItems() []domain.ExpenseItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ExpenseItem, 0, len(s.expenseItemOrder))
	for _, id := range s.expenseItemOrder {
		if item, ok := s.expenseItems[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Reset replaces the entire snapshot with the given collections, preserving
// their order. Used by sync hydration and snapshot loading.
func (s *Store) Reset(clients []domain.Client, events []domain.Event, budgets []domain.Budget, paymentMethods []domain.PaymentMethod, expenseItems []domain.ExpenseItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = make(map[string]domain.Client, len(clients))
	s.clientOrder = s.clientOrder[:0]
	for _, c := range clients {
		s.clients[c.ClientID] = c.Clone()
		s.clientOrder = append(s.clientOrder, c.ClientID)
	}

	s.events = make(map[string]domain.Event, len(events))
	s.eventOrder = s.eventOrder[:0]
	for _, e := range events {
		s.events[e.EventID] = e.Clone()
		s.eventOrder = append(s.eventOrder, e.EventID)
	}

	s.budgets = make(map[string]domain.Budget, len(budgets))
	s.budgetOrder = s.budgetOrder[:0]
	for _, b := range budgets {
		s.budgets[b.BudgetID] = b.Clone()
		s.budgetOrder = append(s.budgetOrder, b.BudgetID)
	}

	s.paymentMethods = make(map[string]domain.PaymentMethod, len(paymentMethods))
	s.paymentMethodOrder = s.paymentMethodOrder[:0]
	for _, pm := range paymentMethods {
		s.paymentMethods[pm.PaymentMethodID] = pm
		s.paymentMethodOrder = append(s.paymentMethodOrder, pm.PaymentMethodID)
	}

	s.expenseItems = make(map[string]domain.ExpenseItem, len(expenseItems))
	s.expenseItemOrder = s.expenseItemOrder[:0]
	for _, item := range expenseItems {
		s.expenseItems[item.ExpenseItemID] = item
		s.expenseItemOrder = append(s.expenseItemOrder, item.ExpenseItemID)
	}

	s.markUpdated()
}
