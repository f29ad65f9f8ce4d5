package domain

import "time"

// Slot is one named cell of the durable key-value store. Each top-level
// catalog collection is serialized into exactly one slot.
type Slot struct {
	Key       string    `gorm:"column:slot_key;type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName implements the GORM tabler interface.
func (Slot) TableName() string { return "slots" }
