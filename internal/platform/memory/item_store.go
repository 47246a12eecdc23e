package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/itemkit/itemkit/internal/domain"
	"github.com/itemkit/itemkit/internal/store"
)

// ItemStore is an in-memory store.ItemStore backed by a map. An insertion
// order index gives List its stable creation-order sort. The mutex only
// protects the map and index from concurrent mutation; there is no
// transactional isolation, concurrent writers are last-writer-wins.
type ItemStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*domain.Item
	order []uuid.UUID
}

// Statically verify the interface is satisfied.
var _ store.ItemStore = (*ItemStore)(nil)

// NewItemStore creates an empty in-memory item store.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items: make(map[uuid.UUID]*domain.Item),
	}
}

// Create saves a new item. Returns store.ErrInvalidEntity if the item fails
// validation or an item with the same ID already exists.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ID]; exists {
		return fmt.Errorf("%w: duplicate ID %s", store.ErrInvalidEntity, item.ID)
	}

	s.items[item.ID] = item.Clone()
	s.order = append(s.order, item.ID)
	return nil
}

// GetByID retrieves an item by ID.
// Returns store.ErrItemNotFound if it does not exist.
func (s *ItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	return item.Clone(), nil
}

// Update applies a partial update to an existing item.
func (s *ItemStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update domain.ItemUpdate,
) (*domain.Item, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}

	update.Apply(item)
	return item.Clone(), nil
}

// Delete removes an item by ID.
// Returns store.ErrItemNotFound if it does not exist.
func (s *ItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return store.ErrItemNotFound
	}

	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns one page of items in creation order, optionally filtered by a
// case-insensitive substring match on the name. A page past the end of the
// result set yields an empty page with the correct total count.
func (s *ItemStore) List(ctx context.Context, params store.ListParams) (*store.Page, error) {
	params, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(params.Search)

	matches := make([]*domain.Item, 0, len(s.order))
	for _, id := range s.order {
		item := s.items[id]
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		matches = append(matches, item)
	}

	total := len(matches)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	page := make([]*domain.Item, 0, end-start)
	for _, item := range matches[start:end] {
		page = append(page, item.Clone())
	}

	return store.NewPage(page, total, params), nil
}
