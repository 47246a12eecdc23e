package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/itemkit/itemkit/internal/store"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "nil error", err: nil, sentinel: nil},
		{
			name:     "no documents",
			err:      mongo.ErrNoDocuments,
			sentinel: store.ErrItemNotFound,
		},
		{
			name:     "wrapped no documents",
			err:      fmt.Errorf("decode: %w", mongo.ErrNoDocuments),
			sentinel: store.ErrItemNotFound,
		},
		{
			name:     "client disconnected",
			err:      mongo.ErrClientDisconnected,
			sentinel: store.ErrUnavailable,
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			sentinel: store.ErrUnavailable,
		},
		{
			name: "network error",
			err: mongo.CommandError{
				Labels:  []string{"NetworkError"},
				Wrapped: &net.OpError{Op: "dial", Err: errors.New("connection refused")},
			},
			sentinel: store.ErrUnavailable,
		},
		{
			name: "duplicate key",
			err: mongo.WriteException{
				WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}},
			},
			sentinel: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tc.err)
			if tc.sentinel == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.sentinel)
		})
	}
}

func TestMapErrorUnknownErrorIsWrapped(t *testing.T) {
	t.Parallel()

	cause := errors.New("some driver failure")
	mapped := MapError(cause)

	assert.ErrorIs(t, mapped, cause, "original error must stay reachable for logging")
	assert.False(t, store.IsNotFoundError(mapped))
	assert.False(t, store.IsUnavailableError(mapped))
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(mongo.ErrNoDocuments))
	assert.True(t, IsNotFoundError(store.ErrItemNotFound))
	assert.True(t, IsNotFoundError(MapError(mongo.ErrNoDocuments)))
	assert.False(t, IsNotFoundError(errors.New("boom")))
	assert.False(t, IsNotFoundError(nil))
}
