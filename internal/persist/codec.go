package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Load reads the slot named key and decodes it into a T. When the slot is
// absent, unreadable, or does not decode, def is returned instead; the
// failure is logged through the context logger and never reaches the caller.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			zerolog.Ctx(ctx).Warn().Err(err).Str("slot", key).Msg("slot read failed, using default")
		}
		return def
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("slot", key).Msg("slot corrupt, using default")
		return def
	}
	return out
}

// Save encodes value and overwrites the slot named key.
func Save[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
