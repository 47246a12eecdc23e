package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// connectTimeout bounds connection establishment, server selection and
// individual operations. Matches the startup behavior of the service: if the
// database cannot be reached within this window, startup fails.
const connectTimeout = 5 * time.Second

// Connect builds a MongoDB client for the given connection URI and verifies
// the connection with a ping. The returned client is safe for concurrent use
// and should be disconnected during shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetTimeout(connectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", MapError(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		// Best-effort cleanup; the ping error is the one worth reporting.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", MapError(err))
	}

	return client, nil
}

// CheckConnection reports whether the database is currently reachable.
// Used by the health endpoint.
func CheckConnection(ctx context.Context, client *mongo.Client) bool {
	if client == nil {
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	return client.Ping(pingCtx, readpref.Primary()) == nil
}
