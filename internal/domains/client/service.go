package client

import (
	"context"
	"mime/multipart"
)

// Service - business logic contract cho client domain
// Create dùng chung upload pipeline với project, khác dimension profile (avatar)
type Service interface {
	Create(ctx context.Context, req CreateClientRequest, form *multipart.Form) (*ClientDTO, error)
	List(ctx context.Context) ([]ClientDTO, error)
	GetByID(ctx context.Context, id string) (*ClientDTO, error)
}
