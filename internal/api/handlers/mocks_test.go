package handlers_test

import (
	"context"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/stretchr/testify/mock"
)

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetAvailableServices(ctx context.Context) ([]*entities.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Service), args.Error(1)
}

type MockTrendingReader struct {
	mock.Mock
}

func (m *MockTrendingReader) GetTrendingServices(ctx context.Context) ([]*entities.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Service), args.Error(1)
}

type MockMemberReader struct {
	mock.Mock
}

func (m *MockMemberReader) GetUserProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockMemberReader) GetUserBookingHistory(ctx context.Context, userID string) ([]*entities.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Booking), args.Error(1)
}

func (m *MockMemberReader) GetSimilarUsers(ctx context.Context, userID string) ([]entities.PeerAffinity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PeerAffinity), args.Error(1)
}

func (m *MockMemberReader) GenerateRecommendations(ctx context.Context, userID string) ([]entities.ScoredService, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ScoredService), args.Error(1)
}

type MockConciergeReader struct {
	mock.Mock
}

func (m *MockConciergeReader) GetService(ctx context.Context, id string) (*entities.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Service), args.Error(1)
}

func (m *MockConciergeReader) GetBooking(ctx context.Context, id string) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockConciergeReader) GetOverview(ctx context.Context) (*entities.ConciergeOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConciergeOverview), args.Error(1)
}
