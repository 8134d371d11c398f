package contact

import "context"

// Service - business logic contract cho contact domain
// Submit persist rồi enqueue notification job (job fail không chặn submit)
type Service interface {
	Submit(ctx context.Context, req CreateContactRequest) (*ContactDTO, error)
	List(ctx context.Context) ([]ContactDTO, error)
	GetByID(ctx context.Context, id string) (*ContactDTO, error)
	GetStats(ctx context.Context) (*Stats, error)
	ExportToExcel(ctx context.Context) ([]byte, error)
}
