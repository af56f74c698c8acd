package repositories

import (
	"context"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// BookingRepository defines the read operations on the bookings table.
// Every list is ordered newest first and every booking carries the joined
// service, nil when it no longer resolves.
type BookingRepository interface {
	// GetByID retrieves a single booking, returning a not found error when absent
	GetByID(ctx context.Context, id string) (*entities.Booking, error)

	// ListAll retrieves every booking
	ListAll(ctx context.Context) ([]*entities.Booking, error)

	// ListByUser retrieves a member's bookings
	ListByUser(ctx context.Context, userID string) ([]*entities.Booking, error)

	// ListByServiceIDs retrieves bookings of any of the given services made
	// by members other than excludeUserID
	ListByServiceIDs(ctx context.Context, serviceIDs []string, excludeUserID string) ([]*entities.Booking, error)

	// ListByUsers retrieves bookings made by any of the given members
	ListByUsers(ctx context.Context, userIDs []string) ([]*entities.Booking, error)

	// ListCreatedSince retrieves bookings created at or after cutoff
	ListCreatedSince(ctx context.Context, cutoff time.Time) ([]*entities.Booking, error)
}
