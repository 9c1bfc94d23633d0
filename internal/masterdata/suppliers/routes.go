package suppliers

import (
	"log/slog"

	"github.com/supplyline/supplyline/internal/shared"
)

// Handler serves /suppliers.
type Handler = shared.ResourceHandler[Supplier, CreateInput, UpdateInput]

// NewHandler exposes the service over HTTP.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return shared.NewResourceHandler[Supplier, CreateInput, UpdateInput](logger, "suppliers", service)
}
