package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atharvaaa699/mishika/internal/application/services"
	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var trendingNow = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

func newTrendingService(repo *MockBookingRepository) *services.TrendingService {
	s := services.NewTrendingService(repo, 4, 30*24*time.Hour)
	s.SetClock(func() time.Time { return trendingNow })
	return s
}

func TestTrendingService_RanksByRecentBookings(t *testing.T) {
	repo := new(MockBookingRepository)
	x := svc("X", "yacht", nil)
	y := svc("Y", "spa", nil)

	repo.On("ListCreatedSince", mock.Anything, trendingNow.Add(-30*24*time.Hour)).
		Return([]*entities.Booking{
			booking("u1", y, 0),
			booking("u2", x, 0),
			booking("u3", x, 0),
			booking("u4", x, 0),
		}, nil)

	result, err := newTrendingService(repo).GetTrendingServices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []*entities.Service{x, y}, result)
	repo.AssertExpectations(t)
}

func TestTrendingService_CapsAndKeepsFirstSeenOrderOnTies(t *testing.T) {
	repo := new(MockBookingRepository)

	var recent []*entities.Booking
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		recent = append(recent, booking("u1", svc(id, "c", nil), 0))
	}
	repo.On("ListCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(recent, nil)

	result, err := newTrendingService(repo).GetTrendingServices(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 4)
	for i, id := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, id, result[i].ID)
	}
}

func TestTrendingService_SkipsUnresolvedServices(t *testing.T) {
	repo := new(MockBookingRepository)
	x := svc("X", "yacht", nil)

	repo.On("ListCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*entities.Booking{
			{UserID: "u1", ServiceID: "gone"},
			{UserID: "u2", ServiceID: "gone"},
			booking("u3", x, 0),
		}, nil)

	result, err := newTrendingService(repo).GetTrendingServices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []*entities.Service{x}, result)
}

func TestTrendingService_EmptyWindow(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return([]*entities.Booking{}, nil)

	result, err := newTrendingService(repo).GetTrendingServices(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestTrendingService_PropagatesFailure(t *testing.T) {
	repo := new(MockBookingRepository)
	failure := errors.New("connection refused")
	repo.On("ListCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, failure)

	result, err := newTrendingService(repo).GetTrendingServices(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, failure)
}
