package handlers

import (
	"context"
	"net/http"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// ConciergeReader serves single records and the admin overview
type ConciergeReader interface {
	GetService(ctx context.Context, id string) (*entities.Service, error)
	GetBooking(ctx context.Context, id string) (*entities.Booking, error)
	GetOverview(ctx context.Context) (*entities.ConciergeOverview, error)
}

// ConciergeHandler handles service, booking and admin overview requests
type ConciergeHandler struct {
	concierge ConciergeReader
}

// NewConciergeHandler creates a new concierge handler
func NewConciergeHandler(concierge ConciergeReader) *ConciergeHandler {
	return &ConciergeHandler{concierge: concierge}
}

// GetService handles GET /api/services/{id}
func (h *ConciergeHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "service ID is required")
		return
	}

	service, err := h.concierge.GetService(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err, "failed to load service")
		return
	}

	respondWithJSON(w, http.StatusOK, service)
}

// GetBooking handles GET /api/bookings/{id}
func (h *ConciergeHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "booking ID is required")
		return
	}

	booking, err := h.concierge.GetBooking(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err, "failed to load booking")
		return
	}

	respondWithJSON(w, http.StatusOK, booking)
}

// GetOverview handles GET /api/admin/overview
func (h *ConciergeHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.concierge.GetOverview(r.Context())
	if err != nil {
		respondWithAppError(w, r, err, "failed to load overview")
		return
	}

	respondWithJSON(w, http.StatusOK, overview)
}
