package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itemkit/itemkit/internal/config"
	"github.com/itemkit/itemkit/internal/platform/memory"
	"github.com/itemkit/itemkit/internal/platform/mongodb"
	"github.com/itemkit/itemkit/internal/store"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// application holds the server's dependencies: configuration, the logger and
// both storage backends. Handlers receive their store explicitly; there is no
// process-wide mutable state.
type application struct {
	config *config.Config
	logger *slog.Logger

	itemStore   store.ItemStore
	dbItemStore store.ItemStore
	mongoClient *mongo.Client
}

// newApplication wires up the application's dependencies. Connecting to
// MongoDB happens here, before the server starts accepting connections, so a
// dead database fails startup rather than the first request.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
) (*application, error) {
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	log.Info("Connected to MongoDB",
		"host", cfg.Mongo.Host,
		"port", cfg.Mongo.Port,
		"database", cfg.Mongo.Database)

	return &application{
		config:      cfg,
		logger:      log,
		itemStore:   memory.NewItemStore(),
		dbItemStore: mongodb.NewItemStore(client.Database(cfg.Mongo.Database), log),
		mongoClient: client,
	}, nil
}

// checkDatabase reports whether MongoDB is currently reachable.
func (app *application) checkDatabase(ctx context.Context) bool {
	return mongodb.CheckConnection(ctx, app.mongoClient)
}

// cleanup releases the application's external resources during shutdown.
func (app *application) cleanup() {
	if app.mongoClient != nil {
		if err := app.mongoClient.Disconnect(context.Background()); err != nil {
			app.logger.Error("Failed to disconnect mongodb client", "error", err)
		} else {
			app.logger.Info("MongoDB connection closed")
		}
	}
}
