package pgsql

import (
	"encoding/json"
	"fmt"

	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	"github.com/papillon-eventos/event_ledger_app/internal/models"
)

// The staff and menus columns are jsonb; the row models carry them as raw
// bytes and the conversions below do the (un)marshalling.

func marshalStaff(staff []domain.Person) ([]byte, error) {
	if staff == nil {
		staff = []domain.Person{}
	}
	data, err := json.Marshal(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal staff: %w", err)
	}
	return data, nil
}

func marshalMenus(menus []domain.Menu) ([]byte, error) {
	if menus == nil {
		menus = []domain.Menu{}
	}
	data, err := json.Marshal(menus)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal menus: %w", err)
	}
	return data, nil
}

func unmarshalStaff(data []byte) ([]domain.Person, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var staff []domain.Person
	if err := json.Unmarshal(data, &staff); err != nil {
		return nil, fmt.Errorf("failed to unmarshal staff: %w", err)
	}
	if len(staff) == 0 {
		return nil, nil
	}
	return staff, nil
}

func unmarshalMenus(data []byte) ([]domain.Menu, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var menus []domain.Menu
	if err := json.Unmarshal(data, &menus); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menus: %w", err)
	}
	if len(menus) == 0 {
		return nil, nil
	}
	return menus, nil
}

func toModelClient(c domain.Client) models.Client {
	eventIDs := c.EventIDs
	if eventIDs == nil {
		eventIDs = []string{}
	}
	return models.Client{
		ClientID:    c.ClientID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		TaxID:       c.TaxID,
		Notes:       c.Notes,
		EventIDs:    eventIDs,
		AuditFields: models.AuditFields{CreatedAt: c.CreatedAt, LastUpdatedAt: c.LastUpdatedAt},
	}
}

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID: m.ClientID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		TaxID:    m.TaxID,
		Notes:    m.Notes,
		EventIDs: m.EventIDs,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toModelTransaction(t domain.Transaction, position int) models.Transaction {
	return models.Transaction{
		TransactionID: t.TransactionID,
		EventID:       t.EventID,
		Description:   t.Description,
		Amount:        t.Amount,
		Kind:          string(t.Kind),
		Source:        t.Source,
		Destination:   t.Destination,
		OccurredAt:    t.OccurredAt,
		Position:      position,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		EventID:       m.EventID,
		Description:   m.Description,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		Source:        m.Source,
		Destination:   m.Destination,
		OccurredAt:    m.OccurredAt,
	}
}

func toModelEvent(e domain.Event) (models.Event, error) {
	staff, err := marshalStaff(e.Staff)
	if err != nil {
		return models.Event{}, err
	}
	menus, err := marshalMenus(e.Menus)
	if err != nil {
		return models.Event{}, err
	}
	return models.Event{
		EventID:     e.EventID,
		Name:        e.Name,
		Date:        e.Date,
		Status:      string(e.Status),
		ClientID:    e.ClientID,
		ClientName:  e.ClientName,
		Headcount:   e.Headcount,
		Notes:       e.Notes,
		Staff:       staff,
		Menus:       menus,
		AuditFields: models.AuditFields{CreatedAt: e.CreatedAt, LastUpdatedAt: e.LastUpdatedAt},
	}, nil
}

func toDomainEvent(m models.Event, txns []models.Transaction) (domain.Event, error) {
	staff, err := unmarshalStaff(m.Staff)
	if err != nil {
		return domain.Event{}, err
	}
	menus, err := unmarshalMenus(m.Menus)
	if err != nil {
		return domain.Event{}, err
	}
	transactions := make([]domain.Transaction, len(txns))
	for i, t := range txns {
		transactions[i] = toDomainTransaction(t)
	}
	return domain.Event{
		EventID:      m.EventID,
		Name:         m.Name,
		Date:         m.Date,
		Status:       domain.EventStatus(m.Status),
		ClientID:     m.ClientID,
		ClientName:   m.ClientName,
		Headcount:    m.Headcount,
		Notes:        m.Notes,
		Staff:        staff,
		Menus:        menus,
		Transactions: transactions,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}, nil
}

func toModelBudget(b domain.Budget) (models.Budget, error) {
	staff, err := marshalStaff(b.Staff)
	if err != nil {
		return models.Budget{}, err
	}
	menus, err := marshalMenus(b.Menus)
	if err != nil {
		return models.Budget{}, err
	}
	return models.Budget{
		BudgetID:       b.BudgetID,
		ClientID:       b.ClientID,
		ClientName:     b.ClientName,
		PricePerPerson: b.PricePerPerson,
		Headcount:      b.Headcount,
		EventDate:      b.EventDate,
		Deadline:       b.Deadline,
		Notes:          b.Notes,
		Status:         string(b.Status),
		EventID:        b.EventID,
		Staff:          staff,
		Menus:          menus,
		AuditFields:    models.AuditFields{CreatedAt: b.CreatedAt, LastUpdatedAt: b.LastUpdatedAt},
	}, nil
}

func toDomainBudget(m models.Budget) (domain.Budget, error) {
	staff, err := unmarshalStaff(m.Staff)
	if err != nil {
		return domain.Budget{}, err
	}
	menus, err := unmarshalMenus(m.Menus)
	if err != nil {
		return domain.Budget{}, err
	}
	return domain.Budget{
		BudgetID:       m.BudgetID,
		ClientID:       m.ClientID,
		ClientName:     m.ClientName,
		PricePerPerson: m.PricePerPerson,
		Headcount:      m.Headcount,
		EventDate:      m.EventDate,
		Deadline:       m.Deadline,
		Notes:          m.Notes,
		Status:         domain.BudgetStatus(m.Status),
		EventID:        m.EventID,
		Staff:          staff,
		Menus:          menus,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}, nil
}

func toModelPaymentMethod(pm domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodID: pm.PaymentMethodID,
		Name:            pm.Name,
		Amount:          pm.Amount,
		Date:            pm.Date,
		AuditFields:     models.AuditFields{CreatedAt: pm.CreatedAt, LastUpdatedAt: pm.LastUpdatedAt},
	}
}

func toDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		Name:            m.Name,
		Amount:          m.Amount,
		Date:            m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toModelExpenseItem(item domain.ExpenseItem) models.ExpenseItem {
	return models.ExpenseItem{
		ExpenseItemID: item.ExpenseItemID,
		Name:          item.Name,
		Amount:        item.Amount,
		PaymentMethod: item.PaymentMethod,
		AuditFields:   models.AuditFields{CreatedAt: item.CreatedAt, LastUpdatedAt: item.LastUpdatedAt},
	}
}

func toDomainExpenseItem(m models.ExpenseItem) domain.ExpenseItem {
	return domain.ExpenseItem{
		ExpenseItemID: m.ExpenseItemID,
		Name:          m.Name,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
