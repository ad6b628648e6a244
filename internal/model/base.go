package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the columns shared by every entity table: a UUID primary
// key and creation/update timestamps. It is embedded by value in each
// entity struct rather than acting as a parent type.
//
// Fields:
//  ID        – CHAR(36) UUID primary key.
//  CreatedAt – timestamp of creation (UTC).
//  UpdatedAt – timestamp of last update (UTC).
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase returns a Base with a fresh UUID and both timestamps set to now.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps the UpdatedAt timestamp. Repositories call this before
// persisting a mutated entity.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
