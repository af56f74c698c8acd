package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/domain/repositories"
	"github.com/atharvaaa699/mishika/internal/infrastructure/clients/postgres"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// bookingColumns selects the booking row followed by its left-joined service
var bookingColumns = []interface{}{
	"b.id", "b.user_id", "b.service_id", "b.start_date", "b.end_date",
	"b.status", "b.total_amount", "b.payment_status", "b.payment_id",
	"b.special_requests", "b.created_at", "b.updated_at",
	"s.id", "s.name", "s.description", "s.category", "s.price", "s.price_unit",
	"s.image_url", "s.is_available", "s.featured", "s.created_at", "s.updated_at",
}

// BookingAdapter implements the BookingRepository interface
type BookingAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBookingAdapter creates a new booking adapter
func NewBookingAdapter(client *postgres.Client) repositories.BookingRepository {
	return &BookingAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByID retrieves a single booking with its service
func (a *BookingAdapter) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	query, args, err := a.selectBookings(goqu.I("b.id").Eq(id)).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	booking, err := scanBooking(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("booking with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewDataAccessError("failed to get booking", err)
	}
	return booking, nil
}

// ListAll retrieves every booking, newest first
func (a *BookingAdapter) ListAll(ctx context.Context) ([]*entities.Booking, error) {
	return a.list(ctx, "failed to list all bookings")
}

// ListByUser retrieves a member's bookings, newest first
func (a *BookingAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Booking, error) {
	return a.list(ctx, "failed to list user bookings",
		goqu.I("b.user_id").Eq(userID),
	)
}

// ListByServiceIDs retrieves bookings of the given services made by other members
func (a *BookingAdapter) ListByServiceIDs(ctx context.Context, serviceIDs []string, excludeUserID string) ([]*entities.Booking, error) {
	if len(serviceIDs) == 0 {
		return []*entities.Booking{}, nil
	}
	return a.list(ctx, "failed to list bookings by service",
		goqu.I("b.service_id").In(serviceIDs),
		goqu.I("b.user_id").Neq(excludeUserID),
	)
}

// ListByUsers retrieves bookings made by any of the given members
func (a *BookingAdapter) ListByUsers(ctx context.Context, userIDs []string) ([]*entities.Booking, error) {
	if len(userIDs) == 0 {
		return []*entities.Booking{}, nil
	}
	return a.list(ctx, "failed to list bookings by users",
		goqu.I("b.user_id").In(userIDs),
	)
}

// ListCreatedSince retrieves bookings created at or after cutoff
func (a *BookingAdapter) ListCreatedSince(ctx context.Context, cutoff time.Time) ([]*entities.Booking, error) {
	return a.list(ctx, "failed to list recent bookings",
		goqu.I("b.created_at").Gte(cutoff),
	)
}

// selectBookings joins each booking to its service, newest first
func (a *BookingAdapter) selectBookings(conditions ...exp.Expression) *goqu.SelectDataset {
	return a.db.Select(bookingColumns...).
		From(goqu.T("bookings").As("b")).
		LeftJoin(goqu.T("services").As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("b.service_id")))).
		Where(conditions...).
		Order(goqu.I("b.created_at").Desc())
}

func (a *BookingAdapter) list(ctx context.Context, failure string, conditions ...exp.Expression) ([]*entities.Booking, error) {
	query, args, err := a.selectBookings(conditions...).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewDataAccessError(failure, err)
	}
	defer rows.Close()

	bookings := make([]*entities.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, apperrors.NewDataAccessError("failed to scan booking", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDataAccessError(failure, err)
	}

	return bookings, nil
}

func scanBooking(row rowScanner) (*entities.Booking, error) {
	booking := &entities.Booking{}
	var endDate sql.NullTime
	var paymentID, specialRequests sql.NullString

	var serviceID, name, description, category, priceUnit, imageURL sql.NullString
	var price sql.NullFloat64
	var isAvailable, featured sql.NullBool
	var serviceCreatedAt, serviceUpdatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ServiceID,
		&booking.StartDate,
		&endDate,
		&booking.Status,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&paymentID,
		&specialRequests,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&serviceID,
		&name,
		&description,
		&category,
		&price,
		&priceUnit,
		&imageURL,
		&isAvailable,
		&featured,
		&serviceCreatedAt,
		&serviceUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		booking.EndDate = &endDate.Time
	}
	booking.PaymentID = paymentID.String
	booking.SpecialRequests = specialRequests.String

	// A NULL service id means the join found nothing.
	if serviceID.Valid {
		booking.Service = &entities.Service{
			ID:          serviceID.String,
			Name:        name.String,
			Description: description.String,
			Category:    category.String,
			PriceUnit:   priceUnit.String,
			ImageURL:    imageURL.String,
			IsAvailable: isAvailable.Bool,
			Featured:    featured.Bool,
			CreatedAt:   serviceCreatedAt.Time,
			UpdatedAt:   serviceUpdatedAt.Time,
		}
		if price.Valid {
			booking.Service.Price = &price.Float64
		}
	}

	return booking, nil
}
