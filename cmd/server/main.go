// Package main implements the entry point for the itemkit API server, a
// starter CRUD service exposing an items resource on an in-memory backend
// and a mirrored resource on MongoDB.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/itemkit/itemkit/internal/config"
	"github.com/itemkit/itemkit/internal/platform/logger"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and builds the
// application with its storage backends connected. Any failure here,
// including an unreachable MongoDB, aborts startup before the server
// accepts connections.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	if cfg.Server.Debug {
		cfg.Report(os.Stderr)
	}

	slog.Info("Server configuration loaded",
		"version", cfg.Server.Version,
		"environment", cfg.Server.Environment,
		"port", cfg.Server.PublishPort,
		"mongo_uri", cfg.Mongo.RedactedURI())

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
