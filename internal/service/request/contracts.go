package request

import (
	"context"

	"service-assistance/internal/domain"
)

// requestRepository defines storage operations required by the business layer.
type requestRepository interface {
	Create(ctx context.Context, req *domain.AssistanceRequest) (int64, error)
	Get(ctx context.Context, id int64) (*domain.AssistanceRequest, error)
}
