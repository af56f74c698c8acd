package repositories

import (
	"context"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// ServiceRepository defines the interface for catalog reads
type ServiceRepository interface {
	// ListAvailable retrieves every available service, newest first
	ListAvailable(ctx context.Context) ([]*entities.Service, error)

	// List retrieves every service including unavailable ones, newest first
	List(ctx context.Context) ([]*entities.Service, error)

	// GetByID retrieves a service, returning a not found error when absent
	GetByID(ctx context.Context, id string) (*entities.Service, error)
}
