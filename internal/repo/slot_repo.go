// Package repo implements the SQL persistence layer backed by GORM. This file
// provides repository functions for the Slot model, the single table that
// backs the named-slot key-value store.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow the
// "thin repository" approach: no serialization or fallback policy lives here,
// only reads, upserts and deletes of raw slot values.
//
// Error semantics:
//   - When a slot is absent, GetSlot returns ErrNotFound (gorm.ErrRecordNotFound).
//   - All other DB errors are propagated unchanged.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-soft-portal/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience.
var ErrNotFound = gorm.ErrRecordNotFound

// GetSlot returns the raw value stored under key, or ErrNotFound.
func GetSlot(ctx context.Context, db *gorm.DB, key string) (*domain.Slot, error) {
	var s domain.Slot
	if err := db.WithContext(ctx).Where("slot_key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// PutSlot writes value under key, replacing any previous content.
func PutSlot(ctx context.Context, db *gorm.DB, key, value string) error {
	s := &domain.Slot{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(s).Error
}

// DeleteSlots removes the given keys. Missing keys are ignored.
func DeleteSlots(ctx context.Context, db *gorm.DB, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return db.WithContext(ctx).Where("slot_key IN ?", keys).Delete(&domain.Slot{}).Error
}

// ListSlotKeys returns every stored key in ascending order.
func ListSlotKeys(ctx context.Context, db *gorm.DB) ([]string, error) {
	var keys []string
	err := db.WithContext(ctx).
		Model(&domain.Slot{}).
		Order("slot_key asc").
		Pluck("slot_key", &keys).Error
	return keys, err
}
