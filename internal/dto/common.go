package dto

import (
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PersonPayload is a staffing entry crossing the API boundary.
type PersonPayload struct {
	Name string          `json:"name" binding:"required,notblank"`
	Role string          `json:"role" binding:"required"`
	Pay  decimal.Decimal `json:"pay"`
}

// MenuItemPayload is a single dish or drink within a menu payload.
type MenuItemPayload struct {
	Name        string `json:"name" binding:"required,notblank"`
	Kind        string `json:"kind" binding:"required,oneof=FOOD DRINK"`
	Description string `json:"description"`
}

// MenuPayload is a menu crossing the API boundary.
type MenuPayload struct {
	Name        string            `json:"name" binding:"required,notblank"`
	Description string            `json:"description"`
	Items       []MenuItemPayload `json:"items" binding:"dive"`
}

// ToDomainStaff converts staffing payloads to domain people.
func ToDomainStaff(payloads []PersonPayload) []domain.Person {
	if payloads == nil {
		return nil
	}
	staff := make([]domain.Person, len(payloads))
	for i, p := range payloads {
		staff[i] = domain.Person{Name: p.Name, Role: p.Role, Pay: p.Pay}
	}
	return staff
}

// ToDomainMenus converts menu payloads to domain menus.
func ToDomainMenus(payloads []MenuPayload) []domain.Menu {
	if payloads == nil {
		return nil
	}
	menus := make([]domain.Menu, len(payloads))
	for i, m := range payloads {
		items := make([]domain.MenuItem, len(m.Items))
		for j, item := range m.Items {
			items[j] = domain.MenuItem{
				Name:        item.Name,
				Kind:        domain.ItemKind(item.Kind),
				Description: item.Description,
			}
		}
		menus[i] = domain.Menu{Name: m.Name, Description: m.Description, Items: items}
	}
	return menus
}
