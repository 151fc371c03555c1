package envvar

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no variable exists under a key.
var ErrNotFound = errors.New("env var not found")

// Store abstracts the storage operations for environment variables.
// This allows callers to work with different backends (e.g., database,
// mock for testing).
type Store interface {
	// Get returns the variable stored under key. The key is normalized
	// before the lookup.
	Get(ctx context.Context, key string) (*EnvVar, error)

	// Set stores value under key, inserting or updating as needed, and
	// returns the persisted variable. The value is encoded as JSON.
	Set(ctx context.Context, key string, value interface{}) (*EnvVar, error)

	// Unset removes the variable stored under key.
	Unset(ctx context.Context, key string) error

	// All returns every variable, ordered by key.
	All(ctx context.Context) ([]EnvVar, error)
}
