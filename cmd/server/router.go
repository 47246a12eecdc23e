package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/itemkit/itemkit/internal/api"
	apiMiddleware "github.com/itemkit/itemkit/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The in-memory and MongoDB backends share one handler
// implementation mounted on separate route trees.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	itemHandler := api.NewItemHandler(app.itemStore, app.logger)
	dbItemHandler := api.NewItemHandler(app.dbItemStore, app.logger)
	healthHandler := api.NewHealthHandler(
		app.config.Server.Version,
		app.checkDatabase,
		app.logger,
	)

	r.Get("/", healthHandler.Welcome)
	r.Get("/health", healthHandler.Health)

	r.Route("/items", itemHandler.RegisterRoutes)
	r.Route("/db-items", dbItemHandler.RegisterRoutes)

	return r
}
