package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// ItemKind tags a menu item as food or drink.
type ItemKind string

const (
	ItemFood  ItemKind = "FOOD"
	ItemDrink ItemKind = "DRINK"
)

// Valid reports whether the kind is one of the known values.
func (k ItemKind) Valid() bool {
	return k == ItemFood || k == ItemDrink
}

// MenuItem is a single dish or drink on a menu.
type MenuItem struct {
	Name        string   `json:"name"`
	Kind        ItemKind `json:"kind"`
	Description string   `json:"description,omitempty"`
}

// Menu is a named list of items offered for an event or budget.
type Menu struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`
}

// Clone returns a deep copy of the menu.
func (m Menu) Clone() Menu {
	out := m
	out.Items = slices.Clone(m.Items)
	return out
}

// Person is a staffing entry: someone working the event and what they are
// paid for it. Pay may be zero but never negative.
type Person struct {
	Name string          `json:"name"`
	Role string          `json:"role"`
	Pay  decimal.Decimal `json:"pay"`
}

func cloneMenus(menus []Menu) []Menu {
	if menus == nil {
		return nil
	}
	out := make([]Menu, len(menus))
	for i, m := range menus {
		out[i] = m.Clone()
	}
	return out
}
