package warehouses

import (
	"log/slog"

	"github.com/supplyline/supplyline/internal/shared"
)

// Handler serves /warehouses.
type Handler = shared.ResourceHandler[Warehouse, CreateInput, UpdateInput]

// NewHandler exposes the service over HTTP.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return shared.NewResourceHandler[Warehouse, CreateInput, UpdateInput](logger, "warehouses", service)
}
