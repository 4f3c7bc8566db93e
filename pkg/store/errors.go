package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity doesn't exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an operation would violate a uniqueness
// or membership rule (duplicate role, duplicate pending request, and so
// on).
var ErrConflict = errors.New("conflict")

// ErrInvalidState is returned when responding to a workflow record that
// has already been resolved.
var ErrInvalidState = errors.New("invalid state")

// ErrLastPrincipal is the specific conflict raised when a removal would
// leave a holograph with zero principals. It matches ErrConflict under
// errors.Is.
var ErrLastPrincipal = fmt.Errorf("cannot remove the last principal: %w", ErrConflict)

// ErrOwnerProtected is returned when a removal targets the holograph's
// current owner. The check lives in the same transaction as the deletion
// because ownership can change between a removal request and its
// acceptance.
var ErrOwnerProtected = errors.New("the owner cannot be removed")
