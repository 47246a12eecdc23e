package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/itemkit/itemkit/internal/api/shared"
)

// DatabaseChecker reports whether the persistent backend is reachable.
type DatabaseChecker func(ctx context.Context) bool

// HealthHandler serves the welcome and health-check endpoints.
type HealthHandler struct {
	version   string
	startedAt time.Time
	checkDB   DatabaseChecker
	logger    *slog.Logger
}

// WelcomeResponse is the body of the root endpoint.
type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status        string `json:"status"`
	MongoDBPing   string `json:"mongodb_ping"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// NewHealthHandler creates a HealthHandler. checkDB may be nil when the
// service runs without a persistent backend.
func NewHealthHandler(version string, checkDB DatabaseChecker, log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HealthHandler{
		version:   version,
		startedAt: time.Now(),
		checkDB:   checkDB,
		logger:    log.With(slog.String("component", "health_handler")),
	}
}

// Welcome handles GET / requests.
func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message: "Hello from itemkit!",
		Version: h.version,
	})
}

// Health handles GET /health requests. Reports overall status, the database
// ping result and process uptime. A failing database ping degrades the status
// but still answers 200; per-request unavailability is reported where it
// occurs, on the affected routes.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	status := "ok"
	if h.checkDB != nil && !h.checkDB(r.Context()) {
		dbStatus = "not ok"
		status = "unhealthy"
		h.logger.Warn("health check: database unreachable")
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:        status,
		MongoDBPing:   dbStatus,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	})
}
