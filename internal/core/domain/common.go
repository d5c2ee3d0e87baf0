package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// LastUpdatedAt doubles as the invalidation marker for dependent views
// that cache derivations of the entity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Touch stamps the entity as updated at the given time, setting CreatedAt
// on first use.
func (a *AuditFields) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.LastUpdatedAt = now
}
