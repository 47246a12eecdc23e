package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/itemkit/itemkit/internal/domain"
	"github.com/itemkit/itemkit/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil-ish unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "not found", err: store.ErrNotFound, want: http.StatusNotFound},
		{name: "item not found", err: store.ErrItemNotFound, want: http.StatusNotFound},
		{
			name: "wrapped item not found",
			err:  fmt.Errorf("get failed: %w", store.ErrItemNotFound),
			want: http.StatusNotFound,
		},
		{name: "validation", err: domain.ErrValidation, want: http.StatusUnprocessableEntity},
		{
			name: "wrapped validation",
			err:  domain.NewValidationError("name too long"),
			want: http.StatusUnprocessableEntity,
		},
		{name: "invalid ID", err: domain.ErrInvalidID, want: http.StatusUnprocessableEntity},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusUnprocessableEntity},
		{name: "unavailable", err: store.ErrUnavailable, want: http.StatusServiceUnavailable},
		{
			name: "wrapped unavailable",
			err:  fmt.Errorf("list failed: %w", store.ErrUnavailable),
			want: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "unknown error", err: errors.New("driver exploded at socket 5"), want: "An unexpected error occurred"},
		{name: "item not found", err: store.ErrItemNotFound, want: "Item not found"},
		{name: "empty update", err: fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyUpdate), want: "No fields provided for update"},
		{name: "unavailable", err: store.ErrUnavailable, want: "Storage backend unavailable"},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: "Invalid item data"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessageValidationDetail(t *testing.T) {
	t.Parallel()

	err := domain.NewValidationError("name exceeds %d characters", 100)
	msg := GetSafeErrorMessage(err)
	assert.Contains(t, msg, "name exceeds 100 characters")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'CreateItemRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid Name: this field is required", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
