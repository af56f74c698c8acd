package repositories

import (
	"context"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// ProfileRepository defines the interface for member profile reads
type ProfileRepository interface {
	// GetByID retrieves a profile, returning a not found error when absent
	GetByID(ctx context.Context, userID string) (*entities.Profile, error)

	// List retrieves every profile, newest first
	List(ctx context.Context) ([]*entities.Profile, error)
}
