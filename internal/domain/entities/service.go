package entities

import (
	"time"
)

// Service represents a bookable concierge offering in the catalog
type Service struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Price       *float64  `json:"price,omitempty" db:"price"`
	PriceUnit   string    `json:"price_unit,omitempty" db:"price_unit"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	Featured    bool      `json:"featured" db:"featured"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// HasPrice reports whether the service carries a usable price.
// A zero price is treated like a missing one.
func (s *Service) HasPrice() bool {
	return s.Price != nil && *s.Price != 0
}
