package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails a storage constraint,
	// for example a name exceeding its maximum length or a duplicate ID.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the backend cannot be reached. Callers
	// map this to a 503 response; the process keeps serving other requests.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrItemNotFound indicates that the requested item does not exist in the store.
	ErrItemNotFound = fmt.Errorf("%w: item", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailableError checks if the error indicates an unreachable backend.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
