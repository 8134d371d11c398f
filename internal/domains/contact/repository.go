package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository - data access contract cho contact domain
// CountSince/TopCities phục vụ stats endpoint
type Repository interface {
	Create(ctx context.Context, entity *Contact) (*Contact, error)
	GetAll(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	CountAll(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	TopCities(ctx context.Context, limit int) ([]CityCount, error)
}
