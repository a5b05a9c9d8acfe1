package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contains common columns for all tables. IDs are UUIDv7 strings assigned
// before the first insert, or earlier when an entity is attached to a parent,
// so children can reference their parent by ID while still only in memory.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	b.ensureID()
	return nil
}

func (b *Base) ensureID() string {
	if b.ID == "" {
		b.ID = newID()
	}
	return b.ID
}

// newID returns a time-ordered UUIDv7, falling back to v4 if the clock read fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
