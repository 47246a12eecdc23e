package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/itemkit/itemkit/internal/domain"
	"github.com/itemkit/itemkit/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// mustCreate creates an item directly in the store and fails the test on error.
func mustCreate(t *testing.T, s *ItemStore, name string) *domain.Item {
	t.Helper()
	item, err := domain.NewItem(name, nil)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), item))
	return item
}

func TestItemStoreCreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	item, err := domain.NewItem("Widget", strPtr("A widget"))
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, item))

	got, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, *item.Description, *got.Description)

	// The store hands out copies; mutating the result must not affect
	// stored state.
	got.Name = "mutated"
	again, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", again.Name)
}

func TestItemStoreCreateDuplicateID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	item := mustCreate(t, s, "Widget")
	err := s.Create(ctx, item)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestItemStoreGetNotFound(t *testing.T) {
	t.Parallel()

	s := NewItemStore()
	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemStoreUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	item := mustCreate(t, s, "Widget")

	updated, err := s.Update(ctx, item.ID, domain.ItemUpdate{Name: strPtr("Gadget")})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, item.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(item.UpdatedAt))

	got, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gadget", got.Name)
}

func TestItemStoreUpdateErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()
	item := mustCreate(t, s, "Widget")

	t.Run("missing item", func(t *testing.T) {
		_, err := s.Update(ctx, uuid.New(), domain.ItemUpdate{Name: strPtr("x")})
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})

	t.Run("empty update", func(t *testing.T) {
		_, err := s.Update(ctx, item.ID, domain.ItemUpdate{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := s.Update(ctx, item.ID, domain.ItemUpdate{Name: strPtr("")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestItemStoreDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	item := mustCreate(t, s, "Widget")

	require.NoError(t, s.Delete(ctx, item.ID))

	_, err := s.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, s.Delete(ctx, item.ID), store.ErrItemNotFound)
}

func TestItemStoreDeleteNonexistent(t *testing.T) {
	t.Parallel()

	s := NewItemStore()
	err := s.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemStoreListPagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	created := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("item-%d", i)
		mustCreate(t, s, name)
		created = append(created, name)
	}

	// Concatenating all pages in order must reproduce creation order.
	var concatenated []string
	for page := 1; page <= 3; page++ {
		result, err := s.List(ctx, store.ListParams{Page: page, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, result.TotalCount)
		assert.Equal(t, 3, result.TotalPages)
		for _, item := range result.Items {
			concatenated = append(concatenated, item.Name)
		}
	}
	assert.Equal(t, created, concatenated)
}

func TestItemStoreListTwoItemScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	mustCreate(t, s, "A")
	mustCreate(t, s, "B")

	page1, err := s.List(ctx, store.ListParams{Page: 1, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, page1.Items, 1)
	assert.Equal(t, "A", page1.Items[0].Name)
	assert.Equal(t, 2, page1.TotalCount)

	page2, err := s.List(ctx, store.ListParams{Page: 2, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, page2.Items, 1)
	assert.Equal(t, "B", page2.Items[0].Name)
	assert.Equal(t, 2, page2.TotalCount)

	page3, err := s.List(ctx, store.ListParams{Page: 3, PageSize: 1})
	require.NoError(t, err)
	assert.Empty(t, page3.Items)
	assert.Equal(t, 2, page3.TotalCount)
}

func TestItemStoreListSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	mustCreate(t, s, "Widget")
	mustCreate(t, s, "Gadget")
	mustCreate(t, s, "widget pro")

	t.Run("case-insensitive substring", func(t *testing.T) {
		result, err := s.List(ctx, store.ListParams{Search: "widget"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "Widget", result.Items[0].Name, "insertion order preserved")
		assert.Equal(t, "widget pro", result.Items[1].Name)
	})

	t.Run("upper case query", func(t *testing.T) {
		result, err := s.List(ctx, store.ListParams{Search: "WIDGET"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)
	})

	t.Run("no matches", func(t *testing.T) {
		result, err := s.List(ctx, store.ListParams{Search: "sprocket"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalCount)
		assert.Empty(t, result.Items)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		result, err := s.List(ctx, store.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount)
	})
}

func TestItemStoreListInvalidParams(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	for _, params := range []store.ListParams{
		{Page: -1},
		{PageSize: -1},
		{PageSize: store.MaxPageSize + 1},
	} {
		_, err := s.List(ctx, params)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestItemStoreListAfterDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewItemStore()

	a := mustCreate(t, s, "A")
	mustCreate(t, s, "B")
	mustCreate(t, s, "C")

	require.NoError(t, s.Delete(ctx, a.ID))

	result, err := s.List(ctx, store.ListParams{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "B", result.Items[0].Name)
	assert.Equal(t, "C", result.Items[1].Name)
}
