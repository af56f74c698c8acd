package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// MemberReader is the member-scoped part of the recommendation service
type MemberReader interface {
	GetUserProfile(ctx context.Context, userID string) (*entities.Profile, error)
	GetUserBookingHistory(ctx context.Context, userID string) ([]*entities.Booking, error)
	GetSimilarUsers(ctx context.Context, userID string) ([]entities.PeerAffinity, error)
	GenerateRecommendations(ctx context.Context, userID string) ([]entities.ScoredService, error)
}

// MemberHandler handles member profile, history and recommendation requests
type MemberHandler struct {
	members MemberReader
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(members MemberReader) *MemberHandler {
	return &MemberHandler{members: members}
}

// recommendationResponse hides the breakdown unless explain was requested
type recommendationResponse struct {
	Service   *entities.Service        `json:"service"`
	Score     float64                  `json:"score"`
	Breakdown *entities.ScoreBreakdown `json:"breakdown,omitempty"`
}

// GetProfile handles GET /api/members/{id}/profile
func (h *MemberHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "member ID is required")
		return
	}

	profile, err := h.members.GetUserProfile(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err, "failed to load profile")
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// GetBookings handles GET /api/members/{id}/bookings
func (h *MemberHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "member ID is required")
		return
	}

	bookings, err := h.members.GetUserBookingHistory(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err, "failed to load bookings")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":  id,
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetSimilarMembers handles GET /api/members/{id}/similar
func (h *MemberHandler) GetSimilarMembers(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "member ID is required")
		return
	}

	peers, err := h.members.GetSimilarUsers(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err, "failed to find similar members")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": id,
		"similar": peers,
		"count":   len(peers),
	})
}

// GetRecommendations handles GET /api/members/{id}/recommendations
func (h *MemberHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "member ID is required")
		return
	}

	explain := false
	if raw := r.URL.Query().Get("explain"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "explain must be a boolean")
			return
		}
		explain = parsed
	}

	scored, err := h.members.GenerateRecommendations(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err, "failed to generate recommendations")
		return
	}

	recommendations := make([]recommendationResponse, len(scored))
	for i := range scored {
		recommendations[i] = recommendationResponse{
			Service: scored[i].Service,
			Score:   scored[i].Score,
		}
		if explain {
			recommendations[i].Breakdown = &scored[i].Breakdown
		}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":         id,
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}
