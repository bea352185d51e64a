package handlers

import (
	"context"

	"service-assistance/internal/domain"
	"service-assistance/internal/service/dispatch"
	"service-assistance/internal/service/provider"
	"service-assistance/internal/service/request"
)

type providerUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Provider, error)
	Create(ctx context.Context, p *domain.Provider) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialProviderUpdate) (bool, error)
}

// NewProviderUsecase wires a provider Service into a providerUsecase.
func NewProviderUsecase(svc *provider.Service) providerUsecase {
	return svc
}

type requestUsecase interface {
	Create(ctx context.Context, req *domain.AssistanceRequest) (int64, error)
	Get(ctx context.Context, id int64) (*domain.AssistanceRequest, error)
}

// NewRequestUsecase wires a request Service into a requestUsecase.
func NewRequestUsecase(svc *request.Service) requestUsecase {
	return svc
}

type dispatchUsecase interface {
	Dispatch(ctx context.Context, requestID int64) (domain.DispatchResult, error)
	Complete(ctx context.Context, requestID int64) (domain.ReleaseResult, error)
	Cancel(ctx context.Context, requestID int64) (domain.ReleaseResult, error)
}

// NewDispatchUsecase wires the dispatch Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}
