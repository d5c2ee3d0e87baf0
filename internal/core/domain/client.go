package domain

import "slices"

// Client represents a customer that commissions events. A display name maps
// to exactly one Client record; the registry deduplicates by exact name when
// no id is known yet.
type Client struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	TaxID    string `json:"taxID,omitempty"` // CPF or CNPJ
	Notes    string `json:"notes,omitempty"`
	// EventIDs is the back-reference set of events and converted budgets
	// this client participates in.
	EventIDs []string `json:"eventIDs"`
	AuditFields
}

// HasEvent reports whether eventID is already in the back-reference set.
func (c Client) HasEvent(eventID string) bool {
	return slices.Contains(c.EventIDs, eventID)
}

// Clone returns a deep copy safe to hand out or keep for rollback.
func (c Client) Clone() Client {
	out := c
	out.EventIDs = slices.Clone(c.EventIDs)
	return out
}
