package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/itemkit/itemkit/internal/domain"
)

// ItemStore defines the interface for item data persistence.
// Both the in-memory and MongoDB backends satisfy it, so route handlers are
// backend-agnostic.
type ItemStore interface {
	// Create saves a new item to the store. The item must already carry a
	// generated ID and timestamps (see domain.NewItem).
	// Returns ErrInvalidEntity if the item violates a storage constraint.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// Update applies a partial update to an existing item and refreshes its
	// UpdatedAt timestamp. Returns the updated item.
	// Returns ErrItemNotFound if the item does not exist and a wrapped
	// domain.ErrValidation if the update violates a constraint.
	Update(ctx context.Context, id uuid.UUID, update domain.ItemUpdate) (*domain.Item, error)

	// Delete removes an item from the store by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of items matching the given parameters, sorted by
	// creation order. See ListParams for filter and pagination semantics.
	List(ctx context.Context, params ListParams) (*Page, error)
}
