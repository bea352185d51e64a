package request

import (
	"context"
	"strings"
	"time"

	"service-assistance/internal/apperr"
	"service-assistance/internal/domain"
)

// Service handles assistance request intake. Lifecycle transitions past
// PENDING belong to the dispatch engine.
type Service struct {
	repo             requestRepository
	operationTimeout time.Duration
}

// NewService creates and configures a request Service.
func NewService(r requestRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(req *domain.AssistanceRequest) error {
	if req == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(req.PolicyNumber) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidCoordinates(req.Lat, req.Lon) {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(req.IssueDesc) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

// Create persists a new assistance request in PENDING and returns its ID.
func (s *Service) Create(ctx context.Context, req *domain.AssistanceRequest) (int64, error) {
	if err := validateCreate(req); err != nil {
		return 0, err
	}
	req.Status = domain.StatusPending
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, req)
}

// Get retrieves a request by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.AssistanceRequest, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperr.ErrNotFound
	}
	return req, nil
}
