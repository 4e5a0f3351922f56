package domain

import "time"

// Timestamps holds the creation and last modification times of an entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch sets UpdatedAt to now.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}
