package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/atharvaaa699/mishika/internal/application/services"
	"github.com/atharvaaa699/mishika/internal/domain/entities"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type conciergeFixture struct {
	bookings *MockBookingRepository
	catalog  *MockServiceRepository
	profiles *MockProfileRepository
	service  *services.ConciergeService
}

func newConciergeFixture() *conciergeFixture {
	f := &conciergeFixture{
		bookings: new(MockBookingRepository),
		catalog:  new(MockServiceRepository),
		profiles: new(MockProfileRepository),
	}
	f.service = services.NewConciergeService(f.bookings, f.catalog, f.profiles)
	return f
}

func TestConciergeService_GetService(t *testing.T) {
	f := newConciergeFixture()
	withdrawn := svc("villa", "stay", price(4000))
	withdrawn.IsAvailable = false
	f.catalog.On("GetByID", mock.Anything, "villa").Return(withdrawn, nil)

	service, err := f.service.GetService(context.Background(), "villa")

	require.NoError(t, err)
	assert.Same(t, withdrawn, service)

	_, err = f.service.GetService(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
	f.catalog.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestConciergeService_GetBooking(t *testing.T) {
	f := newConciergeFixture()
	missing := apperrors.NewNotFoundError("booking with id bk-404 not found")
	f.bookings.On("GetByID", mock.Anything, "bk-404").Return(nil, missing)

	booking, err := f.service.GetBooking(context.Background(), "bk-404")

	assert.Nil(t, booking)
	assert.Same(t, missing, err)

	_, err = f.service.GetBooking(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestConciergeService_GetOverview(t *testing.T) {
	f := newConciergeFixture()
	jet := svc("jet", "aviation", price(1000))
	villa := svc("villa", "stay", nil)
	villa.IsAvailable = false

	ana := &entities.Profile{ID: "u1", MembershipTier: entities.MembershipTierGold}
	li := &entities.Profile{ID: "u2", MembershipTier: entities.MembershipTierNone}

	paid := booking("u1", jet, 1000)
	paid.Status, paid.PaymentStatus = entities.BookingStatusConfirmed, entities.PaymentStatusPaid
	refunded := booking("u1", jet, 800)
	refunded.Status, refunded.PaymentStatus = entities.BookingStatusCancelled, entities.PaymentStatusRefunded
	orphan := booking("u9", nil, 300)
	orphan.Status, orphan.PaymentStatus = entities.BookingStatusPending, entities.PaymentStatusPaid

	f.profiles.On("List", mock.Anything).Return([]*entities.Profile{ana, li}, nil)
	f.bookings.On("ListAll", mock.Anything).Return([]*entities.Booking{paid, refunded, orphan}, nil)
	f.catalog.On("List", mock.Anything).Return([]*entities.Service{jet, villa}, nil)

	overview, err := f.service.GetOverview(context.Background())

	require.NoError(t, err)
	assert.Same(t, ana, overview.Bookings[0].Member)
	assert.Nil(t, overview.Bookings[2].Member, "bookings of deleted members keep a nil member")

	stats := overview.Stats
	assert.Equal(t, 2, stats.TotalMembers)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 2, stats.TotalServices)
	assert.Equal(t, 1, stats.AvailableServices)
	assert.Equal(t, map[entities.MembershipTier]int{entities.MembershipTierGold: 1, entities.MembershipTierNone: 1}, stats.MembersByTier)
	assert.Equal(t, 1, stats.BookingsByStatus[entities.BookingStatusCancelled])
	assert.Equal(t, 2, stats.BookingsByPayment[entities.PaymentStatusPaid])
	assert.InDelta(t, 1300.0, stats.PaidRevenue, 1e-9)
	f.profiles.AssertExpectations(t)
	f.bookings.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
}

func TestConciergeService_GetOverview_ReadFailureAborts(t *testing.T) {
	f := newConciergeFixture()
	failure := apperrors.NewDataAccessError("failed to list all bookings", errors.New("connection refused"))

	f.profiles.On("List", mock.Anything).Return([]*entities.Profile{}, nil).Maybe()
	f.bookings.On("ListAll", mock.Anything).Return(nil, failure)
	f.catalog.On("List", mock.Anything).Return([]*entities.Service{}, nil).Maybe()

	overview, err := f.service.GetOverview(context.Background())

	assert.Nil(t, overview)
	assert.Same(t, failure, err)
}
