package newsletter

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber - newsletter subscription, email là unique key
// Unsubscribe không xóa row, chỉ set IsActive=false để có thể reactivate
type Subscriber struct {
	ID           uuid.UUID
	EmailAddress string
	IsActive     bool
	SubscribedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Stats - tổng hợp subscribers
type Stats struct {
	TotalActive   int `json:"totalActive"`
	TotalInactive int `json:"totalInactive"`
	Today         int `json:"today"`
	ThisWeek      int `json:"thisWeek"`
}
