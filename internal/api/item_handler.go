package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/itemkit/itemkit/internal/api/shared"
	"github.com/itemkit/itemkit/internal/domain"
	"github.com/itemkit/itemkit/internal/platform/logger"
	"github.com/itemkit/itemkit/internal/store"
)

// ItemHandler handles item-related HTTP requests against an injected store.
// The same handler serves both the in-memory and MongoDB route trees; only
// the store differs.
type ItemHandler struct {
	store  store.ItemStore
	logger *slog.Logger
}

// NewItemHandler creates a new ItemHandler for the given store.
func NewItemHandler(itemStore store.ItemStore, log *slog.Logger) *ItemHandler {
	if itemStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("store cannot be nil for ItemHandler")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ItemHandler{
		store:  itemStore,
		logger: log.With(slog.String("component", "item_handler")),
	}
}

// RegisterRoutes mounts the CRUD and list routes on the given router.
func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.CreateItem)
	r.Get("/", h.ListItems)
	r.Get("/search", h.SearchItems)
	r.Get("/{id}", h.GetItem)
	r.Put("/{id}", h.UpdateItem)
	r.Delete("/{id}", h.DeleteItem)
}

// CreateItem handles POST / requests. Responds 201 with the created item.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed create item request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(
			w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err),
		)
		return
	}

	item, err := domain.NewItem(req.Name, req.Description)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.store.Create(r.Context(), item); err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug("item created", slog.String("item_id", item.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// GetItem handles GET /{id} requests.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathItemID(w, r)
	if !ok {
		return
	}

	item, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// UpdateItem handles PUT /{id} requests. The update is partial: absent fields
// keep their stored values, but at least one field must be present.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathItemID(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed update item request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(
			w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err),
		)
		return
	}

	item, err := h.store.Update(r.Context(), id, req.toUpdate())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug("item updated", slog.String("item_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItem handles DELETE /{id} requests. Responds 204 on success.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathItemID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug("item deleted", slog.String("item_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// ListItems handles GET / requests with optional q, page and size query
// parameters. Without a filter it pages over all items in creation order.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	page, err := h.store.List(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(page))
}

// SearchItems handles GET /search requests. Identical to ListItems except
// that the q parameter is required.
func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if strings.TrimSpace(params.Search) == "" {
		shared.RespondWithError(
			w, r, http.StatusUnprocessableEntity, "Search query is required",
		)
		return
	}

	page, err := h.store.List(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(page))
}

// pathItemID extracts and parses the item UUID from the URL path, writing a
// validation error response when it is malformed.
func (h *ItemHandler) pathItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Debug("invalid item ID in path", slog.String("id", raw))
		shared.RespondWithError(
			w, r, http.StatusUnprocessableEntity, "Invalid item ID format",
		)
		return uuid.Nil, false
	}
	return id, true
}

// parseListParams reads the filter and pagination query parameters.
// Missing parameters fall back to the store defaults; non-numeric page or
// size values are validation errors.
func parseListParams(r *http.Request) (store.ListParams, error) {
	query := r.URL.Query()

	params := store.ListParams{Search: query.Get("q")}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return store.ListParams{}, domain.NewValidationError("page must be an integer, got %q", raw)
		}
		// An explicit zero is rejected rather than silently replaced with
		// the default.
		if page < 1 {
			return store.ListParams{}, domain.NewValidationError("page must be at least 1")
		}
		params.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return store.ListParams{}, domain.NewValidationError("size must be an integer, got %q", raw)
		}
		if size < 1 {
			return store.ListParams{}, domain.NewValidationError("size must be at least 1")
		}
		params.PageSize = size
	}

	return params, nil
}

// respondError maps an error from the store or domain layer onto the HTTP
// error contract and writes the response.
func (h *ItemHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(
		w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err,
	)
}
