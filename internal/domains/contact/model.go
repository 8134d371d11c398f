package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact là một contact form submission
type Contact struct {
	ID           uuid.UUID
	FullName     string
	EmailAddress string
	MobileNumber string
	City         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CityCount - số submissions theo city, dùng cho stats
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// Stats - tổng hợp contact submissions
type Stats struct {
	Total    int         `json:"total"`
	Today    int         `json:"today"`
	ThisWeek int         `json:"thisWeek"`
	ByCity   []CityCount `json:"byCity"`
}
