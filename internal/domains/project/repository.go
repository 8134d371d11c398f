package project

import (
	"context"

	"github.com/google/uuid"
)

// Repository - data access contract cho project domain
type Repository interface {
	Create(ctx context.Context, entity *Project) (*Project, error)
	GetAll(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
}
