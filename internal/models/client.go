package models

// Client is the database row shape for a registered client. EventIDs is
// persisted as a text array column.
type Client struct {
	ClientID string   `json:"clientID"` // Primary Key (UUID)
	Name     string   `json:"name"`     // Unique
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	TaxID    string   `json:"taxID"`
	Notes    string   `json:"notes"`
	EventIDs []string `json:"eventIDs"`
	AuditFields
}
