package entities

import (
	"time"
)

// Slot is a single named unit of persisted storage. Each slot holds one
// JSON-serialized document; the application uses exactly two of them.
type Slot struct {
	Key       string    `gorm:"primaryKey;type:text" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
