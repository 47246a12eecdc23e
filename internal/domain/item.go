package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item field constraints.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// Item is the CRUD resource managed by this service. The ID is generated at
// creation time and never changes; Name is required and bounded; Description
// is optional.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem creates a new Item with a fresh UUID and UTC timestamps.
// Returns an error if validation fails.
func NewItem(name string, description *string) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
func (i *Item) Validate() error {
	if i.ID == uuid.Nil {
		return fmt.Errorf("%w: item ID cannot be empty", ErrValidation)
	}

	if i.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}

	if len(i.Name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLength)
	}

	if i.Description != nil && len(*i.Description) > MaxDescriptionLength {
		return fmt.Errorf(
			"%w: description exceeds %d characters",
			ErrValidation,
			MaxDescriptionLength,
		)
	}

	return nil
}

// Clone returns a deep copy of the item. Stores hand out clones so callers
// cannot mutate stored state through a shared pointer.
func (i *Item) Clone() *Item {
	clone := *i
	if i.Description != nil {
		desc := *i.Description
		clone.Description = &desc
	}
	return &clone
}

// ItemUpdate describes a partial update of an Item's mutable fields.
// Nil fields are left unchanged.
type ItemUpdate struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the update carries no fields.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}

// Validate checks the update's fields against the Item constraints.
// An empty update is rejected with ErrEmptyUpdate.
func (u ItemUpdate) Validate() error {
	if u.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUpdate)
	}

	if u.Name != nil {
		if *u.Name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		if len(*u.Name) > MaxNameLength {
			return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLength)
		}
	}

	if u.Description != nil && len(*u.Description) > MaxDescriptionLength {
		return fmt.Errorf(
			"%w: description exceeds %d characters",
			ErrValidation,
			MaxDescriptionLength,
		)
	}

	return nil
}

// Apply applies the update to the item in place and refreshes UpdatedAt.
// The update must already have been validated.
func (u ItemUpdate) Apply(item *Item) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Description != nil {
		item.Description = u.Description
	}
	item.UpdatedAt = time.Now().UTC()
}
