// Package persist implements the named-slot key-value store that mirrors the
// catalog collections to durable storage.
//
// A Store is a dumb byte-oriented port with three operations. The typed
// helpers Load and Save add the serialization policy on top of it:
//
//   - Load never fails: an absent or undecodable slot yields the caller's
//     default value.
//   - Save never masks a failure: encode and write errors are returned so the
//     caller decides whether to surface them.
//
// Three backends ship with the package: SQLStore (GORM/SQLite), RedisStore
// and MemoryStore.
package persist

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when the slot has never been written
// (or was deleted).
var ErrNotFound = errors.New("slot not found")

// Fixed slot keys, one per top-level collection.
const (
	KeySoftware     = "softwareList"
	KeyCategories   = "categories"
	KeyAuthors      = "authors"
	KeyPlatforms    = "platforms"
	KeyLicenses     = "licenses"
	KeyRequirements = "requirements"
)

// AllKeys lists every slot owned by the catalog, in the order they are
// written during a full sync.
var AllKeys = []string{
	KeySoftware,
	KeyCategories,
	KeyAuthors,
	KeyPlatforms,
	KeyLicenses,
	KeyRequirements,
}

// Store is the durable key-value port.
type Store interface {
	// Get returns the raw bytes under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites key with value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
