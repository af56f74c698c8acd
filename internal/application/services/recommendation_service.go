package services

import (
	"context"
	"sort"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/domain/repositories"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// RecommendationOptions controls result sizes and read fan-out
type RecommendationOptions struct {
	TopN          int
	PeerLimit     int
	ParallelReads bool
}

// DefaultRecommendationOptions returns the production options
func DefaultRecommendationOptions() RecommendationOptions {
	return RecommendationOptions{
		TopN:          6,
		PeerLimit:     5,
		ParallelReads: true,
	}
}

// RecommendationService produces personalised service recommendations from
// booking history, catalog, profile and peer bookings
type RecommendationService struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	profileRepo repositories.ProfileRepository
	scorer      *RecommendationScorer
	options     RecommendationOptions
	metrics     *observability.Metrics
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	profileRepo repositories.ProfileRepository,
	scorer *RecommendationScorer,
	options RecommendationOptions,
) *RecommendationService {
	if scorer == nil {
		scorer = NewRecommendationScorer(DefaultScoringWeights())
	}
	return &RecommendationService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		profileRepo: profileRepo,
		scorer:      scorer,
		options:     options,
	}
}

// SetMetrics enables recommendation metrics
func (s *RecommendationService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// GetUserBookingHistory returns the member's bookings, newest first
func (s *RecommendationService) GetUserBookingHistory(ctx context.Context, userID string) ([]*entities.Booking, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user id is required")
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}

// GetAvailableServices returns the bookable catalog, newest first
func (s *RecommendationService) GetAvailableServices(ctx context.Context) ([]*entities.Service, error) {
	return s.serviceRepo.ListAvailable(ctx)
}

// GetUserProfile returns the member's profile or a not found error
func (s *RecommendationService) GetUserProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user id is required")
	}
	return s.profileRepo.GetByID(ctx, userID)
}

// GetSimilarUsers returns the members whose bookings overlap most with the
// given member's, strongest overlap first
func (s *RecommendationService) GetSimilarUsers(ctx context.Context, userID string) ([]entities.PeerAffinity, error) {
	history, err := s.GetUserBookingHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.similarUsersFromHistory(ctx, userID, history)
}

func (s *RecommendationService) similarUsersFromHistory(ctx context.Context, userID string, history []*entities.Booking) ([]entities.PeerAffinity, error) {
	if len(history) == 0 {
		return []entities.PeerAffinity{}, nil
	}

	// One entry per booking row; repeat bookings widen the overlap.
	serviceIDs := make([]string, 0, len(history))
	for _, booking := range history {
		serviceIDs = append(serviceIDs, booking.ServiceID)
	}

	overlapping, err := s.bookingRepo.ListByServiceIDs(ctx, serviceIDs, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, booking := range overlapping {
		if booking.UserID == userID {
			continue
		}
		if _, seen := counts[booking.UserID]; !seen {
			order = append(order, booking.UserID)
		}
		counts[booking.UserID]++
	}

	peers := make([]entities.PeerAffinity, 0, len(order))
	for _, peerID := range order {
		peers = append(peers, entities.PeerAffinity{UserID: peerID, OverlapCount: counts[peerID]})
	}

	sort.SliceStable(peers, func(i, j int) bool {
		return peers[i].OverlapCount > peers[j].OverlapCount
	})

	if len(peers) > s.options.PeerLimit {
		peers = peers[:s.options.PeerLimit]
	}
	return peers, nil
}

// GetServicesFromSimilarUsers returns the services the given peers booked,
// newest booking first, duplicates kept
func (s *RecommendationService) GetServicesFromSimilarUsers(ctx context.Context, peers []entities.PeerAffinity) ([]*entities.Service, error) {
	if len(peers) == 0 {
		return []*entities.Service{}, nil
	}

	peerIDs := make([]string, len(peers))
	for i, peer := range peers {
		peerIDs[i] = peer.UserID
	}

	bookings, err := s.bookingRepo.ListByUsers(ctx, peerIDs)
	if err != nil {
		return nil, err
	}

	services := make([]*entities.Service, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Service != nil {
			services = append(services, booking.Service)
		}
	}
	return services, nil
}

// recommendationInputs gathers everything the scorer needs for one member
type recommendationInputs struct {
	history         []*entities.Booking
	catalog         []*entities.Service
	profile         *entities.Profile
	peers           []entities.PeerAffinity
	peerServices    []*entities.Service
	profileDegraded bool
}

// GenerateRecommendations scores the catalog for the member and returns the
// best TopN entries. A missing or unreadable profile only drops the
// membership bonus; any other read failure aborts the call.
func (s *RecommendationService) GenerateRecommendations(ctx context.Context, userID string) ([]entities.ScoredService, error) {
	ctx, span := observability.StartSpan(ctx, "RecommendationService.GenerateRecommendations")
	defer span.End()
	observability.SetSpanAttributes(span, attribute.String("user.id", userID))

	if userID == "" {
		return nil, apperrors.NewValidationError("user id is required")
	}

	start := time.Now()

	var in *recommendationInputs
	var err error
	if s.options.ParallelReads {
		in, err = s.loadInputsConcurrently(ctx, userID)
	} else {
		in, err = s.loadInputs(ctx, userID)
	}
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	scored := s.scorer.Score(in.catalog, RecommendationSignals{
		History:      in.history,
		Profile:      in.profile,
		PeerCount:    len(in.peers),
		PeerServices: in.peerServices,
	})
	if len(scored) > s.options.TopN {
		scored = scored[:s.options.TopN]
	}

	observability.SetSpanAttributes(span,
		attribute.Int("recommendation.catalog_size", len(in.catalog)),
		attribute.Int("recommendation.peers", len(in.peers)),
		attribute.Int("recommendation.results", len(scored)),
	)
	observability.RecordRecommendation(ctx, s.metrics, len(scored), in.profileDegraded, time.Since(start))

	return scored, nil
}

func (s *RecommendationService) loadInputs(ctx context.Context, userID string) (*recommendationInputs, error) {
	in := &recommendationInputs{}
	var err error

	if in.history, err = s.GetUserBookingHistory(ctx, userID); err != nil {
		return nil, err
	}
	if in.catalog, err = s.GetAvailableServices(ctx); err != nil {
		return nil, err
	}
	in.profile, in.profileDegraded = s.profileOrNone(ctx, userID)
	if in.peers, err = s.similarUsersFromHistory(ctx, userID, in.history); err != nil {
		return nil, err
	}
	if in.peerServices, err = s.GetServicesFromSimilarUsers(ctx, in.peers); err != nil {
		return nil, err
	}

	return in, nil
}

// loadInputsConcurrently runs the history→peers→peer services chain beside
// the catalog and profile reads. The first failure cancels the rest.
func (s *RecommendationService) loadInputsConcurrently(ctx context.Context, userID string) (*recommendationInputs, error) {
	in := &recommendationInputs{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		history, err := s.GetUserBookingHistory(gctx, userID)
		if err != nil {
			return err
		}
		peers, err := s.similarUsersFromHistory(gctx, userID, history)
		if err != nil {
			return err
		}
		peerServices, err := s.GetServicesFromSimilarUsers(gctx, peers)
		if err != nil {
			return err
		}
		in.history, in.peers, in.peerServices = history, peers, peerServices
		return nil
	})

	g.Go(func() error {
		catalog, err := s.GetAvailableServices(gctx)
		if err != nil {
			return err
		}
		in.catalog = catalog
		return nil
	})

	g.Go(func() error {
		in.profile, in.profileDegraded = s.profileOrNone(gctx, userID)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// profileOrNone loads the profile, reporting true when it had to fall back
// to scoring without one. Nothing is logged once ctx is done, since the
// call is already being abandoned.
func (s *RecommendationService) profileOrNone(ctx context.Context, userID string) (*entities.Profile, bool) {
	profile, err := s.GetUserProfile(ctx, userID)
	if err != nil {
		if ctx.Err() == nil {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Str("user_id", userID).
				Msg("Member profile unavailable, scoring without membership bonus")
		}
		return nil, true
	}
	return profile, false
}
