package newsletter

import (
	"context"
	"time"
)

// Repository - data access contract cho newsletter domain
// GetByEmail trả ErrNotSubscribed khi không có row nào
type Repository interface {
	Create(ctx context.Context, entity *Subscriber) (*Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	GetAll(ctx context.Context) ([]Subscriber, error)
	SetActive(ctx context.Context, email string, active bool, subscribedAt time.Time) (*Subscriber, error)
	CountByActive(ctx context.Context, active bool) (int, error)
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
}
