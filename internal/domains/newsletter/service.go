package newsletter

import "context"

// SubscribeResult phân biệt lần subscribe đầu với reactivation
// Handler cần biết để trả 201 (mới) hay 200 (reactivated)
type SubscribeResult struct {
	Subscriber  *SubscriberDTO
	Reactivated bool
}

// Service - business logic contract cho newsletter domain
type Service interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (*SubscribeResult, error)
	Unsubscribe(ctx context.Context, req SubscribeRequest) error
	List(ctx context.Context) ([]SubscriberDTO, error)
	GetStats(ctx context.Context) (*Stats, error)
	ExportToExcel(ctx context.Context) ([]byte, error)
}
