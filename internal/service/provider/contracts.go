package provider

import (
	"context"

	"service-assistance/internal/domain"
)

// providerRepository defines storage operations required by the business layer.
type providerRepository interface {
	Get(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Provider, error)
	Create(ctx context.Context, p *domain.Provider) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialProviderUpdate) (bool, error)
}
