// Package shared holds request types and handlers reused by the entity packages.
package shared

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/supplyline/supplyline/internal/platform/httpx"
)

// ResourceService is the CRUD contract behind a ResourceHandler. C is the
// create payload and U the partial update payload.
type ResourceService[T, C, U any] interface {
	List(ctx context.Context, limit int) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, in C) (T, error)
	Update(ctx context.Context, id string, in U) (T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler exposes a ResourceService as JSON endpoints.
type ResourceHandler[T, C, U any] struct {
	logger  *slog.Logger
	name    string
	service ResourceService[T, C, U]
}

// NewResourceHandler builds a handler; name labels log lines.
func NewResourceHandler[T, C, U any](logger *slog.Logger, name string, service ResourceService[T, C, U]) *ResourceHandler[T, C, U] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceHandler[T, C, U]{logger: logger, name: name, service: service}
}

// MountRoutes registers list, get, create, update and delete.
func (h *ResourceHandler[T, C, U]) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *ResourceHandler[T, C, U]) list(w http.ResponseWriter, r *http.Request) {
	limit, err := httpx.QueryLimit(r)
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	items, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *ResourceHandler[T, C, U]) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *ResourceHandler[T, C, U]) create(w http.ResponseWriter, r *http.Request) {
	var in C
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, "create", err)
		return
	}
	item, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *ResourceHandler[T, C, U]) update(w http.ResponseWriter, r *http.Request) {
	var in U
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, "update", err)
		return
	}
	item, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *ResourceHandler[T, C, U]) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.fail(w, "delete", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

func (h *ResourceHandler[T, C, U]) fail(w http.ResponseWriter, op string, err error) {
	if httpx.StatusFor(err) >= http.StatusInternalServerError {
		h.logger.Error(h.name+" "+op+" failed", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
