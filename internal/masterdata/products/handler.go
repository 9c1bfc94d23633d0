package products

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/supplyline/supplyline/internal/platform/httpx"
)

// maxUploadBytes bounds workbook uploads.
const maxUploadBytes = 32 << 20

// ImportListener is told how many products an import inserted.
type ImportListener interface {
	ProductsImported(ctx context.Context, inserted int)
}

// Handler serves the product endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	listener ImportListener
}

// NewHandler constructs the product handler. listener may be nil.
func NewHandler(logger *slog.Logger, service *Service, listener ImportListener) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, listener: listener}
}

// MountRoutes registers /products routes on a sub-router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// MountImport registers the workbook upload endpoint.
func (h *Handler) MountImport(r chi.Router) {
	r.Post("/import-excel", h.importExcel)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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
	httpx.JSON(w, http.StatusOK, views(items))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewView(p))
}

type productResponse struct {
	Message string `json:"message"`
	Product *View  `json:"product,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, "create", err)
		return
	}
	p, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	v := NewView(p)
	httpx.JSON(w, http.StatusOK, productResponse{Message: "Product added successfully", Product: &v})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var in UpdateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, "update", err)
		return
	}
	p, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	v := NewView(p)
	httpx.JSON(w, http.StatusOK, productResponse{Message: "Product updated successfully", Product: &v})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete", err)
		return
	}
	httpx.JSON(w, http.StatusOK, productResponse{Message: "Product deleted successfully"})
}

func (h *Handler) importExcel(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "multipart field \"file\" is required")
		return
	}
	defer func() { _ = file.Close() }()

	inserted, err := h.service.Import(r.Context(), file)
	if err != nil {
		h.fail(w, "import", err)
		return
	}
	h.logger.Info("products imported", slog.Int("inserted", inserted))
	if h.listener != nil && inserted > 0 {
		h.listener.ProductsImported(r.Context(), inserted)
	}
	httpx.JSON(w, http.StatusOK, map[string]int{"inserted": inserted})
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	if httpx.StatusFor(err) >= http.StatusInternalServerError {
		h.logger.Error("products "+op+" failed", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
