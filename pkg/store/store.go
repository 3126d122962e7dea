package store

import (
	"context"

	"github.com/pkg/errors"
)

// FileRef names one item held in a Store. It is opaque to callers:
// nothing beyond equality may be assumed about its contents.
type FileRef string

var (
	// ErrNotFound is returned by Delete when the ref is not in the store.
	ErrNotFound = errors.New("file not found")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached or mutated.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Store defines the minimal contract a backend must satisfy to take part
// in bulk deletion. Implementations must be safe for concurrent use.
type Store interface {
	// List returns every ref known to the store at call time, in one call.
	List(ctx context.Context) ([]FileRef, error)

	// Delete removes exactly one item.
	// Returns an error matching ErrNotFound if the ref does not exist.
	Delete(ctx context.Context, ref FileRef) error

	// Close releases any resources held by the backend.
	Close() error
}
