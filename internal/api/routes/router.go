package routes

import (
	"net/http"

	"github.com/atharvaaa699/mishika/internal/api/handlers"
	"github.com/atharvaaa699/mishika/internal/api/middleware"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	catalogHandler   *handlers.CatalogHandler
	memberHandler    *handlers.MemberHandler
	conciergeHandler *handlers.ConciergeHandler

	memberLimiter  func(http.Handler) http.Handler
	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router. memberLimiter guards every route that
// exposes member data and may be nil to serve them without a rate limit.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	memberHandler *handlers.MemberHandler,
	conciergeHandler *handlers.ConciergeHandler,
	memberLimiter func(http.Handler) http.Handler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		catalogHandler:   catalogHandler,
		memberHandler:    memberHandler,
		conciergeHandler: conciergeHandler,
		memberLimiter:    memberLimiter,
		allowedOrigins:   allowedOrigins,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/services", r.catalogHandler.ListServices)
	r.mux.HandleFunc("GET /api/services/trending", r.catalogHandler.GetTrendingServices)
	r.mux.HandleFunc("GET /api/services/{id}", r.conciergeHandler.GetService)

	// Member endpoints
	r.member("GET /api/members/{id}/profile", r.memberHandler.GetProfile)
	r.member("GET /api/members/{id}/bookings", r.memberHandler.GetBookings)
	r.member("GET /api/members/{id}/similar", r.memberHandler.GetSimilarMembers)
	r.member("GET /api/members/{id}/recommendations", r.memberHandler.GetRecommendations)
	r.member("GET /api/bookings/{id}", r.conciergeHandler.GetBooking)

	// Admin endpoints
	r.member("GET /api/admin/overview", r.conciergeHandler.GetOverview)

	// Last applied is outermost. CORS wraps everything so 429s and
	// errors still carry CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(r.mux)(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics, r.mux)(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}

func (r *Router) member(pattern string, fn http.HandlerFunc) {
	var handler http.Handler = fn
	if r.memberLimiter != nil {
		handler = r.memberLimiter(handler)
	}
	r.mux.Handle(pattern, handler)
}
