package objectstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no object exists at the requested path.
var ErrNotFound = errors.New("object not found")

// Store abstracts object storage operations. Implementations must make
// Delete idempotent: deleting a missing object is not an error, so that
// multi-step cleanups can be retried safely.
type Store interface {
	// Put writes data at path, replacing any existing object.
	Put(ctx context.Context, path string, data []byte) error

	// PutIfAbsent writes data at path only if no object exists there.
	// It reports whether the write happened.
	PutIfAbsent(ctx context.Context, path string, data []byte) (bool, error)

	// Get retrieves the object at path.
	// Returns ErrNotFound if the object doesn't exist.
	Get(ctx context.Context, path string) ([]byte, error)

	// Delete removes the object at path. Deleting a missing object
	// succeeds.
	Delete(ctx context.Context, path string) error
}
