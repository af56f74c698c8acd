package services

import (
	"context"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/domain/repositories"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// ConciergeService serves single-record lookups and the admin overview
type ConciergeService struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	profileRepo repositories.ProfileRepository
}

// NewConciergeService creates a new concierge service
func NewConciergeService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	profileRepo repositories.ProfileRepository,
) *ConciergeService {
	return &ConciergeService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		profileRepo: profileRepo,
	}
}

// GetService returns a catalog entry by ID, available or not
func (s *ConciergeService) GetService(ctx context.Context, id string) (*entities.Service, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("service id is required")
	}
	return s.serviceRepo.GetByID(ctx, id)
}

// GetBooking returns a booking by ID with its service
func (s *ConciergeService) GetBooking(ctx context.Context, id string) (*entities.Booking, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("booking id is required")
	}
	return s.bookingRepo.GetByID(ctx, id)
}

// GetOverview loads every member, booking and service and summarises them.
// Each booking carries its member's profile when one exists.
func (s *ConciergeService) GetOverview(ctx context.Context) (*entities.ConciergeOverview, error) {
	ctx, span := observability.StartSpan(ctx, "ConciergeService.GetOverview")
	defer span.End()

	overview := &entities.ConciergeOverview{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		members, err := s.profileRepo.List(gctx)
		overview.Members = members
		return err
	})
	g.Go(func() error {
		bookings, err := s.bookingRepo.ListAll(gctx)
		overview.Bookings = bookings
		return err
	})
	g.Go(func() error {
		services, err := s.serviceRepo.List(gctx)
		overview.Services = services
		return err
	})

	if err := g.Wait(); err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	byID := make(map[string]*entities.Profile, len(overview.Members))
	for _, member := range overview.Members {
		byID[member.ID] = member
	}
	for _, booking := range overview.Bookings {
		booking.Member = byID[booking.UserID]
	}

	overview.Stats = summarise(overview)

	observability.SetSpanAttributes(span,
		attribute.Int("overview.members", overview.Stats.TotalMembers),
		attribute.Int("overview.bookings", overview.Stats.TotalBookings),
		attribute.Int("overview.services", overview.Stats.TotalServices),
	)
	return overview, nil
}

func summarise(overview *entities.ConciergeOverview) entities.OverviewStats {
	stats := entities.OverviewStats{
		TotalMembers:      len(overview.Members),
		TotalBookings:     len(overview.Bookings),
		TotalServices:     len(overview.Services),
		MembersByTier:     make(map[entities.MembershipTier]int),
		BookingsByStatus:  make(map[entities.BookingStatus]int),
		BookingsByPayment: make(map[entities.PaymentStatus]int),
	}

	for _, member := range overview.Members {
		stats.MembersByTier[member.MembershipTier]++
	}
	for _, booking := range overview.Bookings {
		stats.BookingsByStatus[booking.Status]++
		stats.BookingsByPayment[booking.PaymentStatus]++
		if booking.PaymentStatus == entities.PaymentStatusPaid {
			stats.PaidRevenue += booking.TotalAmount
		}
	}
	for _, service := range overview.Services {
		if service.IsAvailable {
			stats.AvailableServices++
		}
	}
	return stats
}
