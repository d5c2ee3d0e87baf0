package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/papillon-eventos/event_ledger_app/internal/utils/pagination"
)

const defaultEventPageSize = 20

type eventService struct {
	store      *store.Store
	eventRepo  portsrepo.EventRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
	clientSvc  portssvc.ClientSvcFacade
}

// NewEventService creates a new event service.
func NewEventService(
	st *store.Store,
	eventRepo portsrepo.EventRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	clientSvc portssvc.ClientSvcFacade,
) portssvc.EventSvcFacade {
	return &eventService{store: st, eventRepo: eventRepo, clientRepo: clientRepo, clientSvc: clientSvc}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: event name is required", apperrors.ErrValidation)
	}
	status := domain.EventPending
	if req.Status != "" {
		status = domain.EventStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown event status %q", apperrors.ErrValidation, req.Status)
		}
	}
	staff, err := toValidatedStaff(req.Staff)
	if err != nil {
		return nil, err
	}
	menus, err := toValidatedMenus(req.Menus)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	eventID := uuid.NewString()

	clientID, err := s.clientSvc.UpsertFromReference(ctx, req.Client, eventID)
	if err != nil {
		return nil, err
	}

	event := domain.Event{
		EventID:      eventID,
		Name:         name,
		Date:         req.Date,
		Status:       status,
		ClientID:     clientID,
		ClientName:   strings.TrimSpace(req.Client.Name),
		Headcount:    req.Headcount,
		Notes:        strings.TrimSpace(req.Notes),
		Staff:        staff,
		Menus:        menus,
		Transactions: []domain.Transaction{},
	}
	event.Touch(now)

	s.store.PutEvent(event)
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.store.RemoveEvent(eventID)
		return nil, fmt.Errorf("%w: saving event %s: %v", apperrors.ErrSync, eventID, err)
	}
	return &event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	prev := event.Clone()

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: event name cannot be blank", apperrors.ErrValidation)
		}
		event.Name = name
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Headcount != nil {
		if *req.Headcount < 0 {
			return nil, fmt.Errorf("%w: headcount cannot be negative", apperrors.ErrValidation)
		}
		event.Headcount = *req.Headcount
	}
	if req.Notes != nil {
		event.Notes = strings.TrimSpace(*req.Notes)
	}
	event.Touch(time.Now())

	s.store.PutEvent(event)
	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		s.store.PutEvent(prev)
		return nil, fmt.Errorf("%w: updating event %s: %v", apperrors.ErrSync, eventID, err)
	}
	return &event, nil
}

func (s *eventService) UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus) (*domain.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown event status %q", apperrors.ErrValidation, status)
	}
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	if event.Status == status {
		return &event, nil
	}
	prev := event.Clone()
	event.Status = status
	event.Touch(time.Now())

	s.store.PutEvent(event)
	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		s.store.PutEvent(prev)
		return nil, fmt.Errorf("%w: updating status of event %s: %v", apperrors.ErrSync, eventID, err)
	}
	return &event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}

	now := time.Now()
	pos := s.store.RemoveEvent(eventID)
	client, prevClient, clientChanged := detachEventLocally(s.store, event.ClientID, eventID, now)

	rollback := func() {
		s.store.RestoreEvent(event, pos)
		if clientChanged {
			s.store.PutClient(prevClient)
		}
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		rollback()
		return fmt.Errorf("%w: deleting event %s: %v", apperrors.ErrSync, eventID, err)
	}
	if clientChanged {
		if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
			rollback()
			return fmt.Errorf("%w: detaching event %s from client %s: %v",
				apperrors.ErrSync, eventID, event.ClientID, err)
		}
	}
	return nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, ok := s.store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return &event, nil
}

// ListEvents pages through events newest-date-first. Ties on date fall back
// to creation time so the order is stable across pages.
func (s *eventService) ListEvents(ctx context.Context, limit int, nextToken string) ([]domain.Event, string, error) {
	if limit <= 0 {
		limit = defaultEventPageSize
	}

	events := s.store.ListEvents()
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.After(events[j].Date)
		}
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	start := 0
	if nextToken != "" {
		date, createdAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		for i, e := range events {
			if e.Date.Before(date) || (e.Date.Equal(date) && e.CreatedAt.Before(createdAt)) {
				start = i
				break
			}
			start = len(events)
		}
	}

	end := start + limit
	if end > len(events) {
		end = len(events)
	}
	page := events[start:end]

	token := ""
	if end < len(events) {
		last := page[len(page)-1]
		token = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return page, token, nil
}

func (s *eventService) ListEventsByClient(ctx context.Context, clientID string) ([]domain.Event, error) {
	if _, ok := s.store.GetClient(clientID); !ok {
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}

	events := s.store.ListEvents()
	out := events[:0]
	for _, e := range events {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out, nil
}
