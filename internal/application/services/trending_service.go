package services

import (
	"context"
	"sort"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/domain/repositories"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// TrendingService ranks services by recent booking volume
type TrendingService struct {
	bookingRepo repositories.BookingRepository
	limit       int
	window      time.Duration
	now         func() time.Time
}

// NewTrendingService creates a trending reader returning up to limit
// services booked within the trailing window
func NewTrendingService(bookingRepo repositories.BookingRepository, limit int, window time.Duration) *TrendingService {
	return &TrendingService{
		bookingRepo: bookingRepo,
		limit:       limit,
		window:      window,
		now:         time.Now,
	}
}

// SetClock replaces the clock the trailing window is measured from
func (s *TrendingService) SetClock(now func() time.Time) {
	s.now = now
}

// GetTrendingServices returns the most booked services in the window.
// Equal counts keep the order in which services were first seen, most
// recent booking first.
func (s *TrendingService) GetTrendingServices(ctx context.Context) ([]*entities.Service, error) {
	ctx, span := observability.StartSpan(ctx, "TrendingService.GetTrendingServices")
	defer span.End()

	cutoff := s.now().Add(-s.window)
	bookings, err := s.bookingRepo.ListCreatedSince(ctx, cutoff)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	type tally struct {
		service *entities.Service
		count   int
	}

	byService := make(map[string]*tally)
	var order []*tally
	for _, booking := range bookings {
		if booking.Service == nil || booking.ServiceID == "" {
			continue
		}
		t, ok := byService[booking.ServiceID]
		if !ok {
			t = &tally{service: booking.Service}
			byService[booking.ServiceID] = t
			order = append(order, t)
		}
		t.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	if len(order) > s.limit {
		order = order[:s.limit]
	}

	trending := make([]*entities.Service, len(order))
	for i, t := range order {
		trending[i] = t.service
	}

	observability.SetSpanAttributes(span,
		attribute.Int("trending.bookings", len(bookings)),
		attribute.Int("trending.results", len(trending)),
	)
	return trending, nil
}
