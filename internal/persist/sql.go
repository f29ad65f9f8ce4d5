package persist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-soft-portal/internal/repo"
)

// SQLStore keeps slots in the GORM-managed "slots" table.
type SQLStore struct {
	DB *gorm.DB
}

// NewSQLStore wraps db. The schema must already be migrated (repo.AutoMigrate).
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{DB: db}
}

// Get implements Store.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	slot, err := repo.GetSlot(ctx, s.DB, key)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(slot.Value), nil
}

// Put implements Store.
func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	return repo.PutSlot(ctx, s.DB, key, string(value))
}

// Delete implements Store.
func (s *SQLStore) Delete(ctx context.Context, keys ...string) error {
	return repo.DeleteSlots(ctx, s.DB, keys...)
}

// Keys lists the slots currently stored, in ascending order.
func (s *SQLStore) Keys(ctx context.Context) ([]string, error) {
	return repo.ListSlotKeys(ctx, s.DB)
}
