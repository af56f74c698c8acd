package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/domain/repositories"
	"github.com/atharvaaa699/mishika/internal/infrastructure/clients/postgres"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

var serviceColumns = []interface{}{
	"id", "name", "description", "category", "price", "price_unit",
	"image_url", "is_available", "featured", "created_at", "updated_at",
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ServiceAdapter implements the ServiceRepository interface
type ServiceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewServiceAdapter creates a new service catalog adapter
func NewServiceAdapter(client *postgres.Client) repositories.ServiceRepository {
	return &ServiceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByID retrieves a service regardless of availability
func (a *ServiceAdapter) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	query, args, err := a.db.Select(serviceColumns...).
		From("services").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	service, err := scanService(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("service with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewDataAccessError("failed to get service", err)
	}
	return service, nil
}

// ListAvailable retrieves every available service, newest first
func (a *ServiceAdapter) ListAvailable(ctx context.Context) ([]*entities.Service, error) {
	return a.list(ctx, "failed to list services", goqu.Ex{"is_available": true})
}

// List retrieves the whole catalog including withdrawn services, newest first
func (a *ServiceAdapter) List(ctx context.Context) ([]*entities.Service, error) {
	return a.list(ctx, "failed to list all services")
}

func (a *ServiceAdapter) list(ctx context.Context, failure string, conditions ...goqu.Expression) ([]*entities.Service, error) {
	query, args, err := a.db.Select(serviceColumns...).
		From("services").
		Where(conditions...).
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewDataAccessError(failure, err)
	}
	defer rows.Close()

	services := make([]*entities.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, apperrors.NewDataAccessError("failed to scan service", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDataAccessError("failed to iterate services", err)
	}

	return services, nil
}

func scanService(row rowScanner) (*entities.Service, error) {
	service := &entities.Service{}
	var description, priceUnit, imageURL sql.NullString
	var price sql.NullFloat64

	err := row.Scan(
		&service.ID,
		&service.Name,
		&description,
		&service.Category,
		&price,
		&priceUnit,
		&imageURL,
		&service.IsAvailable,
		&service.Featured,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.Description = description.String
	service.PriceUnit = priceUnit.String
	service.ImageURL = imageURL.String
	if price.Valid {
		service.Price = &price.Float64
	}
	return service, nil
}
