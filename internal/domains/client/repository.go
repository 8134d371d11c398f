package client

import (
	"context"

	"github.com/google/uuid"
)

// Repository - data access contract cho client domain
type Repository interface {
	Create(ctx context.Context, entity *Client) (*Client, error)
	GetAll(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
}
