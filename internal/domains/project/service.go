package project

import (
	"context"
	"mime/multipart"
)

// Service - business logic contract cho project domain
// Create chạy trọn upload pipeline: validate -> transcode -> store -> persist
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest, form *multipart.Form) (*ProjectDTO, error)
	List(ctx context.Context) ([]ProjectDTO, error)
	GetByID(ctx context.Context, id string) (*ProjectDTO, error)
}
