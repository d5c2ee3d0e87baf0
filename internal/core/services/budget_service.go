package services

import (
	"context"
	"fmt"
	"log/slog"
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

// budgetService owns the budget state machine and the one-way conversion of
// an accepted budget into a confirmed event.
type budgetService struct {
	store      *store.Store
	budgetRepo portsrepo.BudgetRepositoryFacade
	eventRepo  portsrepo.EventRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
	clientSvc  portssvc.ClientSvcFacade
}

// NewBudgetService creates a new budget lifecycle service.
func NewBudgetService(
	st *store.Store,
	budgetRepo portsrepo.BudgetRepositoryFacade,
	eventRepo portsrepo.EventRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	clientSvc portssvc.ClientSvcFacade,
) portssvc.BudgetSvcFacade {
	return &budgetService{
		store:      st,
		budgetRepo: budgetRepo,
		eventRepo:  eventRepo,
		clientRepo: clientRepo,
		clientSvc:  clientSvc,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Headcount <= 0 {
		return nil, fmt.Errorf("%w: headcount must be positive", apperrors.ErrValidation)
	}
	if req.PricePerPerson.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price per person must be positive", apperrors.ErrValidation)
	}
	staff, err := toValidatedStaff(req.Staff)
	if err != nil {
		return nil, err
	}
	menus, err := toValidatedMenus(req.Menus)
	if err != nil {
		return nil, err
	}

	// The client is resolved and persisted as its own operation, matching
	// the backend behaviour: a failed budget save does not unwind an
	// already-registered client.
	clientID, err := s.clientSvc.UpsertFromReference(ctx, req.Client, "")
	if err != nil {
		return nil, err
	}

	budget := domain.Budget{
		BudgetID:       uuid.NewString(),
		ClientID:       clientID,
		ClientName:     strings.TrimSpace(req.Client.Name),
		PricePerPerson: req.PricePerPerson,
		Headcount:      req.Headcount,
		EventDate:      req.EventDate,
		Deadline:       req.Deadline,
		Notes:          strings.TrimSpace(req.Notes),
		Status:         domain.BudgetPending,
		Staff:          staff,
		Menus:          menus,
	}
	budget.Touch(time.Now())

	s.store.PutBudget(budget)
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.store.RemoveBudget(budget.BudgetID)
		return nil, fmt.Errorf("%w: saving budget %s: %v", apperrors.ErrSync, budget.BudgetID, err)
	}
	return &budget, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, ok := s.store.GetBudget(budgetID)
	if !ok {
		return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	if budget.Status != domain.BudgetPending {
		return nil, fmt.Errorf("%w: budget %s is %s and can no longer be edited",
			apperrors.ErrInvalidTransition, budgetID, budget.Status)
	}
	prev := budget.Clone()

	if req.Client != nil {
		clientID, err := s.clientSvc.UpsertFromReference(ctx, *req.Client, "")
		if err != nil {
			return nil, err
		}
		budget.ClientID = clientID
		budget.ClientName = strings.TrimSpace(req.Client.Name)
	}
	if req.PricePerPerson != nil {
		if req.PricePerPerson.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: price per person must be positive", apperrors.ErrValidation)
		}
		budget.PricePerPerson = *req.PricePerPerson
	}
	if req.Headcount != nil {
		if *req.Headcount <= 0 {
			return nil, fmt.Errorf("%w: headcount must be positive", apperrors.ErrValidation)
		}
		budget.Headcount = *req.Headcount
	}
	if req.EventDate != nil {
		budget.EventDate = *req.EventDate
	}
	if req.Deadline != nil {
		budget.Deadline = req.Deadline
	}
	if req.Notes != nil {
		budget.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Staff != nil {
		staff, err := toValidatedStaff(req.Staff)
		if err != nil {
			return nil, err
		}
		budget.Staff = staff
	}
	if req.Menus != nil {
		menus, err := toValidatedMenus(req.Menus)
		if err != nil {
			return nil, err
		}
		budget.Menus = menus
	}
	budget.Touch(time.Now())

	s.store.PutBudget(budget)
	if err := s.budgetRepo.UpdateBudget(ctx, budget); err != nil {
		s.store.PutBudget(prev)
		return nil, fmt.Errorf("%w: updating budget %s: %v", apperrors.ErrSync, budgetID, err)
	}
	return &budget, nil
}

// AcceptBudget is the conversion point: the budget's client, staffing,
// menus and date are snapshotted into the new event at acceptance time, so
// nothing edited later on either record propagates to the other.
func (s *budgetService) AcceptBudget(ctx context.Context, budgetID string) (*domain.Event, error) {
	budget, ok := s.store.GetBudget(budgetID)
	if !ok {
		return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	if budget.Status != domain.BudgetPending {
		return nil, fmt.Errorf("%w: cannot accept budget %s in status %s",
			apperrors.ErrInvalidTransition, budgetID, budget.Status)
	}

	now := time.Now()
	total := budget.TotalValue()
	eventID := uuid.NewString()
	snapshot := budget.Clone()

	event := domain.Event{
		EventID:    eventID,
		Name:       fmt.Sprintf("Event for %s", budget.ClientName),
		Date:       budget.EventDate,
		Status:     domain.EventConfirmed,
		ClientID:   budget.ClientID,
		ClientName: budget.ClientName,
		Headcount:  budget.Headcount,
		Notes:      budget.Notes,
		Staff:      snapshot.Staff,
		Menus:      snapshot.Menus,
		Transactions: []domain.Transaction{{
			TransactionID: uuid.NewString(),
			EventID:       eventID,
			Description:   "Initial funding from accepted budget",
			Amount:        total,
			Kind:          domain.Funding,
			Source:        domain.SourceClient,
			OccurredAt:    now,
		}},
	}
	event.Touch(now)

	prevBudget := budget.Clone()
	budget.Status = domain.BudgetAccepted
	budget.EventID = eventID
	budget.Touch(now)

	// Optimistic local apply, then remote write-through with full rollback.
	s.store.PutEvent(event)
	s.store.PutBudget(budget)
	client, prevClient, clientChanged := attachEventLocally(s.store, budget.ClientID, eventID, now)

	rollback := func() {
		s.store.RemoveEvent(eventID)
		s.store.PutBudget(prevBudget)
		if clientChanged {
			s.store.PutClient(prevClient)
		}
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		rollback()
		return nil, fmt.Errorf("%w: saving event for accepted budget %s: %v", apperrors.ErrSync, budgetID, err)
	}
	if err := s.budgetRepo.UpdateBudget(ctx, budget); err != nil {
		rollback()
		return nil, fmt.Errorf("%w: marking budget %s accepted: %v", apperrors.ErrSync, budgetID, err)
	}
	if clientChanged {
		if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
			rollback()
			return nil, fmt.Errorf("%w: linking event %s to client %s: %v", apperrors.ErrSync, eventID, budget.ClientID, err)
		}
	}

	slog.Default().Info("budget accepted",
		slog.String("budget_id", budgetID),
		slog.String("event_id", eventID),
		slog.String("total", total.String()))
	return &event, nil
}

func (s *budgetService) RejectBudget(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, ok := s.store.GetBudget(budgetID)
	if !ok {
		return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	if budget.Status != domain.BudgetPending {
		return nil, fmt.Errorf("%w: cannot reject budget %s in status %s",
			apperrors.ErrInvalidTransition, budgetID, budget.Status)
	}
	prev := budget.Clone()
	budget.Status = domain.BudgetRejected
	budget.Touch(time.Now())

	s.store.PutBudget(budget)
	if err := s.budgetRepo.UpdateBudget(ctx, budget); err != nil {
		s.store.PutBudget(prev)
		return nil, fmt.Errorf("%w: marking budget %s rejected: %v", apperrors.ErrSync, budgetID, err)
	}
	return &budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	budget, ok := s.store.GetBudget(budgetID)
	if !ok {
		return fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}

	pos := s.store.RemoveBudget(budgetID)
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.store.RestoreBudget(budget, pos)
		return fmt.Errorf("%w: deleting budget %s: %v", apperrors.ErrSync, budgetID, err)
	}
	return nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, ok := s.store.GetBudget(budgetID)
	if !ok {
		return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	return &budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.Budget, error) {
	budgets := s.store.ListBudgets()
	if params.Status != "" {
		status := domain.BudgetStatus(params.Status)
		filtered := budgets[:0]
		for _, b := range budgets {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		budgets = filtered
	}
	return paginate(budgets, params.Limit, params.Offset), nil
}
