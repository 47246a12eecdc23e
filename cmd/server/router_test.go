package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itemkit/itemkit/internal/config"
	"github.com/itemkit/itemkit/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds an application with in-memory backends on both
// route trees, so routing can be exercised without a running MongoDB.
func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{
				Version:     "test",
				Environment: "development",
				PublishPort: 8000,
			},
		},
		logger:      slog.Default(),
		itemStore:   memory.NewItemStore(),
		dbItemStore: memory.NewItemStore(),
	}
}

func TestRouterWelcomeAndHealth(t *testing.T) {
	router := newTestApplication().setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var welcome map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &welcome))
	assert.Equal(t, "test", welcome["version"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	// No mongo client in the test application, so the ping is down but the
	// endpoint still answers.
	assert.Equal(t, "unhealthy", health["status"])
}

func TestRouterItemRoutesAreIndependent(t *testing.T) {
	router := newTestApplication().setupRouter()

	// Create an item on the in-memory tree.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost, "/items", strings.NewReader(`{"name":"Widget"}`),
	)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The mirrored /db-items tree has its own backend and stays empty.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/db-items", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, float64(0), page["total_count"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, float64(1), page["total_count"])
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestApplication().setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
