package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/itemkit/itemkit/internal/domain"
	"github.com/itemkit/itemkit/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. The mapping is the service's error contract:
// validation failures are 422, missing entities 404, unreachable backends 503.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, domain.ErrEmptyUpdate):
		return "No fields provided for update"

	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		// Domain validation messages name the failing constraint without any
		// internal detail, so they are safe to return as-is.
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid item data"

	case errors.Is(err, store.ErrUnavailable):
		return "Storage backend unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError converts a validator error on a request struct into
// a user-friendly message naming the failing field and rule.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'CreateItemRequest.Name' Error:Field validation for
		// 'Name' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "gt", "gte":
		return "value is too small"
	case "lt", "lte":
		return "value is too large"
	default:
		return "invalid value"
	}
}
