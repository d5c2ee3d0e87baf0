package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
)

// Repository is an in-memory implementation of every backend surface. It
// backs disconnected mode, where the engine runs against the snapshot file
// alone, and doubles as the test backend.
type Repository struct {
	mu             sync.RWMutex
	clients        map[string]domain.Client
	events         map[string]domain.Event
	budgets        map[string]domain.Budget
	paymentMethods map[string]domain.PaymentMethod
	expenseItems   map[string]domain.ExpenseItem
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{
		clients:        make(map[string]domain.Client),
		events:         make(map[string]domain.Event),
		budgets:        make(map[string]domain.Budget),
		paymentMethods: make(map[string]domain.PaymentMethod),
		expenseItems:   make(map[string]domain.ExpenseItem),
	}
}

// NewRepositoryProvider wires a single in-memory repository behind all four
// backend surfaces.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	repo := New()
	return portsrepo.RepositoryProvider{
		ClientRepo:  repo,
		EventRepo:   repo,
		BudgetRepo:  repo,
		CatalogRepo: repo,
	}
}

var (
	_ portsrepo.ClientRepositoryFacade  = (*Repository)(nil)
	_ portsrepo.EventRepositoryFacade   = (*Repository)(nil)
	_ portsrepo.BudgetRepositoryFacade  = (*Repository)(nil)
	_ portsrepo.CatalogRepositoryFacade = (*Repository)(nil)
)

func (r *Repository) SaveClient(ctx context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[client.ClientID]; exists {
		return fmt.Errorf("client %s: %w", client.ClientID, apperrors.ErrDuplicate)
	}
	for _, existing := range r.clients {
		if existing.Name == client.Name {
			return fmt.Errorf("client name %q: %w", client.Name, apperrors.ErrDuplicate)
		}
	}
	r.clients[client.ClientID] = client.Clone()
	return nil
}

func (r *Repository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[clientID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := client.Clone()
	return &out, nil
}

func (r *Repository) ListClients(ctx context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repository) UpdateClient(ctx context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ClientID]; !ok {
		return apperrors.ErrNotFound
	}
	for id, existing := range r.clients {
		if id != client.ClientID && existing.Name == client.Name {
			return fmt.Errorf("client name %q: %w", client.Name, apperrors.ErrDuplicate)
		}
	}
	r.clients[client.ClientID] = client.Clone()
	return nil
}

func (r *Repository) DeleteClient(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[clientID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.clients, clientID)
	return nil
}

func (r *Repository) SaveEvent(ctx context.Context, event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.events[event.EventID]; exists {
		return fmt.Errorf("event %s: %w", event.EventID, apperrors.ErrDuplicate)
	}
	r.events[event.EventID] = event.Clone()
	return nil
}

func (r *Repository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[eventID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := event.Clone()
	return &out, nil
}

func (r *Repository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *Repository) UpdateEvent(ctx context.Context, event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.EventID]; !ok {
		return apperrors.ErrNotFound
	}
	r.events[event.EventID] = event.Clone()
	return nil
}

func (r *Repository) DeleteEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[eventID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.events, eventID)
	return nil
}

func (r *Repository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.budgets[budget.BudgetID]; exists {
		return fmt.Errorf("budget %s: %w", budget.BudgetID, apperrors.ErrDuplicate)
	}
	r.budgets[budget.BudgetID] = budget.Clone()
	return nil
}

func (r *Repository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	budget, ok := r.budgets[budgetID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := budget.Clone()
	return &out, nil
}

func (r *Repository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Budget, 0, len(r.budgets))
	for _, b := range r.budgets {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Repository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.budgets[budget.BudgetID]; !ok {
		return apperrors.ErrNotFound
	}
	r.budgets[budget.BudgetID] = budget.Clone()
	return nil
}

func (r *Repository) DeleteBudget(ctx context.Context, budgetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.budgets[budgetID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.budgets, budgetID)
	return nil
}

func (r *Repository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.paymentMethods[method.PaymentMethodID]; exists {
		return fmt.Errorf("payment method %s: %w", method.PaymentMethodID, apperrors.ErrDuplicate)
	}
	r.paymentMethods[method.PaymentMethodID] = method
	return nil
}

func (r *Repository) FindPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	method, ok := r.paymentMethods[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &method, nil
}

func (r *Repository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentMethod, 0, len(r.paymentMethods))
	for _, pm := range r.paymentMethods {
		out = append(out, pm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *Repository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.paymentMethods[method.PaymentMethodID]; !ok {
		return apperrors.ErrNotFound
	}
	r.paymentMethods[method.PaymentMethodID] = method
	return nil
}

func (r *Repository) DeletePaymentMethod(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.paymentMethods[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.paymentMethods, id)
	return nil
}

func (r *Repository) SaveExpenseItem(ctx context.Context, item domain.ExpenseItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.expenseItems[item.ExpenseItemID]; exists {
		return fmt.Errorf("expense item %s: %w", item.ExpenseItemID, apperrors.ErrDuplicate)
	}
	r.expenseItems[item.ExpenseItemID] = item
	return nil
}

func (r *Repository) FindExpenseItemByID(ctx context.Context, id string) (*domain.ExpenseItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.expenseItems[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

func (r *Repository) ListExpenseItems(ctx context.Context) ([]domain.ExpenseItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ExpenseItem, 0, len(r.expenseItems))
	for _, item := range r.expenseItems {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repository) UpdateExpenseItem(ctx context.Context, item domain.ExpenseItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenseItems[item.ExpenseItemID]; !ok {
		return apperrors.ErrNotFound
	}
	r.expenseItems[item.ExpenseItemID] = item
	return nil
}

func (r *Repository) DeleteExpenseItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenseItems[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.expenseItems, id)
	return nil
}
