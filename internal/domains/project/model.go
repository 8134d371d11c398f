package project

import (
	"time"

	"github.com/google/uuid"
)

// Project là portfolio entity - mỗi project giữ đúng một image filename
// Image URL không lưu DB, derive lúc serialize (xem dto.go)
type Project struct {
	ID            uuid.UUID
	Name          string
	Description   string
	ImageFilename string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
