package handlers

import (
	"log/slog"
	"net/http"

	"github.com/florista/storefront/internal/api/middleware"
	service "github.com/florista/storefront/internal/services"
	"github.com/florista/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListFlowers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		flowers, err := h.catalogService.ListFlowers(r.Context())
		if err != nil {
			logger.Error("Failed to list flowers", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, flowers)
	}
}

func (h *CatalogHandler) ListBouquets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		bouquets, err := h.catalogService.ListBouquets(r.Context())
		if err != nil {
			logger.Error("Failed to list bouquets", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, bouquets)
	}
}
