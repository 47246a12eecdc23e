package api

import (
	"time"

	"github.com/itemkit/itemkit/internal/domain"
	"github.com/itemkit/itemkit/internal/store"
)

// CreateItemRequest defines the payload for the item creation endpoint.
type CreateItemRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// UpdateItemRequest defines the payload for the item update endpoint.
// Absent fields are left unchanged; at least one field must be present.
type UpdateItemRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// toUpdate converts the request into the domain-level partial update.
func (r UpdateItemRequest) toUpdate() domain.ItemUpdate {
	return domain.ItemUpdate{
		Name:        r.Name,
		Description: r.Description,
	}
}

// ItemResponse represents the response data for an item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PaginatedItemsResponse represents one page of items plus the pagination
// metadata clients need to walk the full result set.
type PaginatedItemsResponse struct {
	Items      []ItemResponse `json:"items"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// itemToResponse transforms a domain item into its API representation.
func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// pageToResponse transforms a store page into its API representation.
func pageToResponse(page *store.Page) PaginatedItemsResponse {
	items := make([]ItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, itemToResponse(item))
	}
	return PaginatedItemsResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		Size:       page.PageSize,
		TotalPages: page.TotalPages,
	}
}
