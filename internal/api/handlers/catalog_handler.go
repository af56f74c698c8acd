package handlers

import (
	"context"
	"net/http"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// CatalogReader lists the bookable catalog
type CatalogReader interface {
	GetAvailableServices(ctx context.Context) ([]*entities.Service, error)
}

// TrendingReader lists the most booked recent services
type TrendingReader interface {
	GetTrendingServices(ctx context.Context) ([]*entities.Service, error)
}

// CatalogHandler handles service catalog requests
type CatalogHandler struct {
	catalog  CatalogReader
	trending TrendingReader
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog CatalogReader, trending TrendingReader) *CatalogHandler {
	return &CatalogHandler{
		catalog:  catalog,
		trending: trending,
	}
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.GetAvailableServices(r.Context())
	if err != nil {
		respondWithAppError(w, r, err, "failed to list services")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"services": services,
		"count":    len(services),
	})
}

// GetTrendingServices handles GET /api/services/trending
func (h *CatalogHandler) GetTrendingServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.trending.GetTrendingServices(r.Context())
	if err != nil {
		respondWithAppError(w, r, err, "failed to load trending services")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"services": services,
		"count":    len(services),
	})
}
