package entities

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity shared by every entity. It is set once at
// construction; only Touch moves UpdatedAt forward.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntityID returns the entity identifier.
func (b Base) EntityID() string {
	return b.ID
}

// Touch refreshes the last-modified timestamp.
func (b *Base) Touch() {
	now := time.Now().UTC()
	if !now.After(b.UpdatedAt) {
		// Keep UpdatedAt strictly increasing on coarse clocks.
		now = b.UpdatedAt.Add(time.Microsecond)
	}
	b.UpdatedAt = now
}
