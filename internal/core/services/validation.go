package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
)

// toValidatedStaff converts staffing payloads and rejects blank names and
// negative pay before anything reaches the store.
func toValidatedStaff(payloads []dto.PersonPayload) ([]domain.Person, error) {
	staff := dto.ToDomainStaff(payloads)
	for i := range staff {
		staff[i].Name = strings.TrimSpace(staff[i].Name)
		staff[i].Role = strings.TrimSpace(staff[i].Role)
		if staff[i].Name == "" {
			return nil, fmt.Errorf("%w: staff entry %d has no name", apperrors.ErrValidation, i)
		}
		if staff[i].Pay.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: staff entry %q has negative pay", apperrors.ErrValidation, staff[i].Name)
		}
	}
	return staff, nil
}

// toValidatedMenus converts menu payloads and rejects unknown item kinds.
func toValidatedMenus(payloads []dto.MenuPayload) ([]domain.Menu, error) {
	menus := dto.ToDomainMenus(payloads)
	for i := range menus {
		menus[i].Name = strings.TrimSpace(menus[i].Name)
		if menus[i].Name == "" {
			return nil, fmt.Errorf("%w: menu entry %d has no name", apperrors.ErrValidation, i)
		}
		for _, item := range menus[i].Items {
			if !item.Kind.Valid() {
				return nil, fmt.Errorf("%w: menu %q has item with unknown kind %q",
					apperrors.ErrValidation, menus[i].Name, item.Kind)
			}
		}
	}
	return menus, nil
}
