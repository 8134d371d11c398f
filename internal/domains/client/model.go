package client

import (
	"time"

	"github.com/google/uuid"
)

// Client là testimonial entity - avatar filename lưu DB, URL derive lúc serialize
type Client struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Designation   string
	ImageFilename string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Designations là closed set cho client designation
// Giữ dạng []interface{} để dùng trực tiếp với validation.In
var Designations = []interface{}{
	"CEO",
	"CTO",
	"Web Developer",
	"Designer",
	"Product Manager",
	"Marketing Manager",
	"Founder",
	"Director",
	"Senior Developer",
	"UI/UX Designer",
	"Other",
}
