package domain

import "time"

// Timestamps records creation and last-modification instants. It is
// embedded by every persisted entity and stamped by the store on save.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch marks the entity as written at now. CreatedAt is set only once.
func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
