package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atharvaaa699/mishika/internal/adapters/database"
	"github.com/atharvaaa699/mishika/internal/domain/entities"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingRowColumns = []string{
	"id", "user_id", "service_id", "start_date", "end_date",
	"status", "total_amount", "payment_status", "payment_id",
	"special_requests", "created_at", "updated_at",
	"id", "name", "description", "category", "price", "price_unit",
	"image_url", "is_available", "featured", "created_at", "updated_at",
}

func bookingRow(rows *sqlmock.Rows, id, userID, serviceID string, amount float64, resolved bool, at time.Time) *sqlmock.Rows {
	if !resolved {
		return rows.AddRow(id, userID, serviceID, at, nil, "confirmed", amount, "paid", nil, nil, at, at,
			nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	}
	return rows.AddRow(id, userID, serviceID, at, nil, "confirmed", amount, "paid", "pi_123", "champagne on arrival", at, at,
		serviceID, "Service "+serviceID, "desc", "aviation", 1000.0, "per trip", nil, true, false, at, at)
}

func TestBookingAdapter_ListByUser(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewBookingAdapter(client)
	at := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookingRowColumns)
	bookingRow(rows, "bk-2", "u-1", "svc-jet", 1000, true, at)
	bookingRow(rows, "bk-1", "u-1", "svc-gone", 250, false, at.Add(-time.Hour))

	mock.ExpectQuery(sqlLike(
		`FROM "bookings" AS "b"`,
		`LEFT JOIN "services" AS "s" ON ("s"."id" = "b"."service_id")`,
		`"b"."user_id" = 'u-1'`,
		`ORDER BY "b"."created_at" DESC`,
	)).WillReturnRows(rows)

	bookings, err := adapter.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	first := bookings[0]
	assert.Equal(t, "bk-2", first.ID)
	assert.Equal(t, entities.BookingStatusConfirmed, first.Status)
	assert.Equal(t, entities.PaymentStatusPaid, first.PaymentStatus)
	assert.Equal(t, "pi_123", first.PaymentID)
	require.NotNil(t, first.Service)
	assert.Equal(t, "svc-jet", first.Service.ID)
	assert.Equal(t, "aviation", first.Service.Category)
	require.NotNil(t, first.Service.Price)
	assert.Equal(t, 1000.0, *first.Service.Price)

	assert.Equal(t, "svc-gone", bookings[1].ServiceID)
	assert.Nil(t, bookings[1].Service)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingAdapter_ListByServiceIDs(t *testing.T) {
	t.Run("filters by services and excludes the requesting member", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewBookingAdapter(client)
		at := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(bookingRowColumns)
		bookingRow(rows, "bk-9", "u-2", "svc-jet", 900, true, at)

		mock.ExpectQuery(sqlLike(
			`"b"."service_id" IN ('svc-jet', 'svc-yacht')`,
			`"b"."user_id" != 'u-1'`,
		)).WillReturnRows(rows)

		bookings, err := adapter.ListByServiceIDs(context.Background(), []string{"svc-jet", "svc-yacht"}, "u-1")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "u-2", bookings[0].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty service list skips the query", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewBookingAdapter(client)

		bookings, err := adapter.ListByServiceIDs(context.Background(), nil, "u-1")
		require.NoError(t, err)
		assert.Empty(t, bookings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingAdapter_ListByUsers(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewBookingAdapter(client)

	mock.ExpectQuery(sqlLike(`"b"."user_id" IN ('u-2', 'u-3')`)).
		WillReturnError(errors.New("canceling statement due to statement timeout"))

	bookings, err := adapter.ListByUsers(context.Background(), []string{"u-2", "u-3"})
	require.Error(t, err)
	assert.Nil(t, bookings)
	assert.True(t, apperrors.IsDataAccess(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingAdapter_ListCreatedSince(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewBookingAdapter(client)
	at := time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookingRowColumns)
	bookingRow(rows, "bk-5", "u-4", "svc-jet", 1200, true, at)

	mock.ExpectQuery(sqlLike(`"b"."created_at" >= `, `ORDER BY "b"."created_at" DESC`)).
		WillReturnRows(rows)

	bookings, err := adapter.ListCreatedSince(context.Background(), at.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "bk-5", bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingAdapter_GetByID(t *testing.T) {
	at := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)

	t.Run("joins the service", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewBookingAdapter(client)

		rows := sqlmock.NewRows(bookingRowColumns)
		bookingRow(rows, "bk-7", "u-1", "svc-jet", 1000, true, at)
		mock.ExpectQuery(sqlLike(
			`FROM "bookings" AS "b"`,
			`LEFT JOIN "services" AS "s" ON ("s"."id" = "b"."service_id")`,
			`"b"."id" = 'bk-7'`,
		)).WillReturnRows(rows)

		booking, err := adapter.GetByID(context.Background(), "bk-7")
		require.NoError(t, err)
		assert.Equal(t, "bk-7", booking.ID)
		assert.Equal(t, "champagne on arrival", booking.SpecialRequests)
		require.NotNil(t, booking.Service)
		assert.Equal(t, "svc-jet", booking.Service.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewBookingAdapter(client)

		mock.ExpectQuery(sqlLike(`"b"."id" = 'bk-404'`)).WillReturnRows(sqlmock.NewRows(bookingRowColumns))

		booking, err := adapter.GetByID(context.Background(), "bk-404")
		assert.Nil(t, booking)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("store fault surfaces as data access error", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewBookingAdapter(client)

		mock.ExpectQuery(sqlLike(`"b"."id" = 'bk-1'`)).WillReturnError(errors.New("connection reset"))

		_, err := adapter.GetByID(context.Background(), "bk-1")
		assert.True(t, apperrors.IsDataAccess(err))
	})
}

func TestBookingAdapter_ListAll(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewBookingAdapter(client)
	at := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookingRowColumns)
	bookingRow(rows, "bk-3", "u-2", "svc-jet", 900, true, at)
	bookingRow(rows, "bk-2", "u-1", "svc-gone", 100, false, at.Add(-time.Hour))

	mock.ExpectQuery(sqlLike(
		`FROM "bookings" AS "b"`,
		`LEFT JOIN "services" AS "s"`,
		`ORDER BY "b"."created_at" DESC`,
	)).WillReturnRows(rows)

	bookings, err := adapter.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "bk-3", bookings[0].ID)
	assert.Nil(t, bookings[1].Service)
	assert.NoError(t, mock.ExpectationsWereMet())
}
