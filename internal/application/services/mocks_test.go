package services_test

import (
	"context"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]*entities.Booking, error) {
	args := m.Called(ctx)
	return bookingsArg(args, 0), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Booking, error) {
	args := m.Called(ctx, userID)
	return bookingsArg(args, 0), args.Error(1)
}

func (m *MockBookingRepository) ListByServiceIDs(ctx context.Context, serviceIDs []string, excludeUserID string) ([]*entities.Booking, error) {
	args := m.Called(ctx, serviceIDs, excludeUserID)
	return bookingsArg(args, 0), args.Error(1)
}

func (m *MockBookingRepository) ListByUsers(ctx context.Context, userIDs []string) ([]*entities.Booking, error) {
	args := m.Called(ctx, userIDs)
	return bookingsArg(args, 0), args.Error(1)
}

func (m *MockBookingRepository) ListCreatedSince(ctx context.Context, cutoff time.Time) ([]*entities.Booking, error) {
	args := m.Called(ctx, cutoff)
	return bookingsArg(args, 0), args.Error(1)
}

func bookingsArg(args mock.Arguments, i int) []*entities.Booking {
	if v := args.Get(i); v != nil {
		return v.([]*entities.Booking)
	}
	return nil
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) ListAvailable(ctx context.Context) ([]*entities.Service, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entities.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceRepository) List(ctx context.Context) ([]*entities.Service, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entities.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*entities.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]*entities.Profile, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entities.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func price(v float64) *float64 {
	return &v
}

func svc(id, category string, p *float64) *entities.Service {
	return &entities.Service{ID: id, Name: id, Category: category, Price: p, IsAvailable: true}
}

func booking(userID string, service *entities.Service, amount float64) *entities.Booking {
	b := &entities.Booking{UserID: userID, TotalAmount: amount}
	if service != nil {
		b.ServiceID = service.ID
		b.Service = service
	}
	return b
}
