package store

import (
	"fmt"

	"github.com/itemkit/itemkit/internal/domain"
)

// Pagination bounds shared by all backends.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListParams carries the filter and pagination arguments for List.
//
// Search is an optional case-insensitive substring filter on the item name.
// Page is 1-based; PageSize is capped at MaxPageSize. Zero values are
// replaced with the defaults by Normalize.
type ListParams struct {
	Search   string
	Page     int
	PageSize int
}

// Normalize applies defaults for unset pagination fields and validates the
// result. Returns a wrapped domain.ErrValidation for a non-positive page or
// page size, or a page size above MaxPageSize.
func (p ListParams) Normalize() (ListParams, error) {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}

	if p.Page < 1 {
		return ListParams{}, fmt.Errorf("%w: page must be at least 1", domain.ErrValidation)
	}
	if p.PageSize < 1 {
		return ListParams{}, fmt.Errorf("%w: page size must be at least 1", domain.ErrValidation)
	}
	if p.PageSize > MaxPageSize {
		return ListParams{}, fmt.Errorf(
			"%w: page size must not exceed %d",
			domain.ErrValidation,
			MaxPageSize,
		)
	}

	return p, nil
}

// Offset returns the number of records to skip for the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of list results plus the metadata needed by clients to
// walk the full result set. Computed per request, never persisted.
type Page struct {
	Items      []*domain.Item
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// NewPage builds a Page for the given slice of matching items. The items
// slice must already be restricted to the requested page; totalCount is the
// size of the full match set.
func NewPage(items []*domain.Item, totalCount int, params ListParams) *Page {
	if items == nil {
		items = []*domain.Item{}
	}
	return &Page{
		Items:      items,
		TotalCount: totalCount,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: (totalCount + params.PageSize - 1) / params.PageSize,
	}
}
