package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
)

// clientService implements the client registry: one Client record per
// display name, with event back-references maintained as budgets convert
// and events come and go.
type clientService struct {
	store      *store.Store
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client registry service.
func NewClientService(st *store.Store, clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{store: st, clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// mergeClientFields applies the non-destructive merge rule: a non-blank
// incoming field wins (most recently supplied value), a blank one never
// clobbers existing data. Reports whether anything changed.
func mergeClientFields(c *domain.Client, ref dto.ClientReference) bool {
	changed := false
	apply := func(dst *string, src string) {
		src = strings.TrimSpace(src)
		if src != "" && src != *dst {
			*dst = src
			changed = true
		}
	}
	apply(&c.Email, ref.Email)
	apply(&c.Phone, ref.Phone)
	apply(&c.TaxID, ref.TaxID)
	apply(&c.Notes, ref.Notes)
	return changed
}

func (s *clientService) UpsertFromReference(ctx context.Context, ref dto.ClientReference, eventID string) (string, error) {
	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return "", fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}
	now := time.Now()

	if existing, ok := s.store.FindClientByName(name); ok {
		prev := existing.Clone()
		changed := mergeClientFields(&existing, ref)
		if eventID != "" && !existing.HasEvent(eventID) {
			existing.EventIDs = append(existing.EventIDs, eventID)
			changed = true
		}
		if !changed {
			// Re-adding a known event id is a no-op.
			return existing.ClientID, nil
		}
		existing.Touch(now)
		s.store.PutClient(existing)
		if err := s.clientRepo.UpdateClient(ctx, existing); err != nil {
			s.store.PutClient(prev)
			return "", fmt.Errorf("%w: updating client %s: %v", apperrors.ErrSync, existing.ClientID, err)
		}
		return existing.ClientID, nil
	}

	client := domain.Client{
		ClientID: uuid.NewString(),
		Name:     name,
		Email:    strings.TrimSpace(ref.Email),
		Phone:    strings.TrimSpace(ref.Phone),
		TaxID:    strings.TrimSpace(ref.TaxID),
		Notes:    strings.TrimSpace(ref.Notes),
	}
	if eventID != "" {
		client.EventIDs = []string{eventID}
	}
	client.Touch(now)

	s.store.PutClient(client)
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.store.RemoveClient(client.ClientID)
		return "", fmt.Errorf("%w: saving client %q: %v", apperrors.ErrSync, name, err)
	}
	return client.ClientID, nil
}

func (s *clientService) Detach(ctx context.Context, clientID string, eventID string) error {
	client, ok := s.store.GetClient(clientID)
	if !ok {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	if !client.HasEvent(eventID) {
		return nil
	}
	prev := client.Clone()
	client.EventIDs = slices.DeleteFunc(client.EventIDs, func(id string) bool { return id == eventID })
	client.Touch(time.Now())

	s.store.PutClient(client)
	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		s.store.PutClient(prev)
		return fmt.Errorf("%w: detaching event %s from client %s: %v", apperrors.ErrSync, eventID, clientID, err)
	}
	return nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}
	if _, ok := s.store.FindClientByName(name); ok {
		return nil, fmt.Errorf("%w: client named %q", apperrors.ErrDuplicate, name)
	}

	client := domain.Client{
		ClientID: uuid.NewString(),
		Name:     name,
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		TaxID:    strings.TrimSpace(req.TaxID),
		Notes:    strings.TrimSpace(req.Notes),
	}
	client.Touch(time.Now())

	s.store.PutClient(client)
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.store.RemoveClient(client.ClientID)
		return nil, fmt.Errorf("%w: saving client %q: %v", apperrors.ErrSync, name, err)
	}
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, ok := s.store.GetClient(clientID)
	if !ok {
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	prev := client.Clone()

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: client name cannot be blank", apperrors.ErrValidation)
		}
		if other, ok := s.store.FindClientByName(name); ok && other.ClientID != clientID {
			return nil, fmt.Errorf("%w: client named %q", apperrors.ErrDuplicate, name)
		}
		client.Name = name
	}
	if req.Email != nil {
		client.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.TaxID != nil {
		client.TaxID = strings.TrimSpace(*req.TaxID)
	}
	if req.Notes != nil {
		client.Notes = strings.TrimSpace(*req.Notes)
	}
	client.Touch(time.Now())

	s.store.PutClient(client)
	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		s.store.PutClient(prev)
		return nil, fmt.Errorf("%w: updating client %s: %v", apperrors.ErrSync, clientID, err)
	}
	return &client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	client, ok := s.store.GetClient(clientID)
	if !ok {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}

	pos := s.store.RemoveClient(clientID)
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.store.RestoreClient(client, pos)
		return fmt.Errorf("%w: deleting client %s: %v", apperrors.ErrSync, clientID, err)
	}
	return nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, ok := s.store.GetClient(clientID)
	if !ok {
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	return &client, nil
}

func (s *clientService) GetClientByName(ctx context.Context, name string) (*domain.Client, error) {
	client, ok := s.store.FindClientByName(strings.TrimSpace(name))
	if !ok {
		return nil, fmt.Errorf("%w: client named %q", apperrors.ErrNotFound, name)
	}
	return &client, nil
}

func (s *clientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	clients := s.store.ListClients()
	return paginate(clients, limit, offset), nil
}

// attachEventLocally adds an event back-reference to the client in the
// local snapshot only, returning the previous state for rollback. Used by
// services that bundle the client update into a larger write-through unit.
func attachEventLocally(st *store.Store, clientID, eventID string, now time.Time) (updated, prev domain.Client, changed bool) {
	client, ok := st.GetClient(clientID)
	if !ok || client.HasEvent(eventID) {
		return domain.Client{}, domain.Client{}, false
	}
	prev = client.Clone()
	client.EventIDs = append(client.EventIDs, eventID)
	client.Touch(now)
	st.PutClient(client)
	return client, prev, true
}

// detachEventLocally is the inverse of attachEventLocally.
func detachEventLocally(st *store.Store, clientID, eventID string, now time.Time) (updated, prev domain.Client, changed bool) {
	client, ok := st.GetClient(clientID)
	if !ok || !client.HasEvent(eventID) {
		return domain.Client{}, domain.Client{}, false
	}
	prev = client.Clone()
	client.EventIDs = slices.DeleteFunc(client.EventIDs, func(id string) bool { return id == eventID })
	client.Touch(now)
	st.PutClient(client)
	return client, prev, true
}

// paginate applies limit/offset slicing with the defaults the handlers use.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
