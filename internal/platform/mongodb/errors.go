package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/itemkit/itemkit/internal/store"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MapError maps a driver error to the shared store error taxonomy.
// It wraps the original error to preserve context for logging while callers
// match on the store sentinels with errors.Is. Raw driver errors must never
// cross the store boundary; every database operation goes through this
// function.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", store.ErrItemNotFound, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: duplicate key: %v", store.ErrInvalidEntity, err)
	}

	// Connection-level failures: the server is unreachable, selection timed
	// out, or the client was already torn down.
	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return fmt.Errorf("mongodb operation failed: %w", err)
}

// IsNotFoundError checks if the given error represents a "not found" result,
// either from the driver or already mapped to the store taxonomy.
func IsNotFoundError(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, store.ErrNotFound)
}
