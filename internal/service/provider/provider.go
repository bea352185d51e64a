package provider

import (
	"context"
	"strings"
	"time"

	"service-assistance/internal/apperr"
	"service-assistance/internal/domain"
)

// Service coordinates provider directory logic and orchestrates repository calls.
// Availability flips that happen as part of a dispatch go through the dispatch
// engine's locked transaction, not through this service.
type Service struct {
	repo             providerRepository
	operationTimeout time.Duration
}

// NewService creates and configures a provider Service.
func NewService(r providerRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a provider for creation.
func validateCreate(p *domain.Provider) error {
	if p == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(p.Name) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(p.Phone) {
		return apperr.ErrInvalid
	}
	if !domain.ValidCoordinates(p.Lat, p.Lon) {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialProviderUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Phone == nil && u.Lat == nil && u.Lon == nil && u.IsAvailable == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}
	if u.Lat != nil || u.Lon != nil {
		// coordinates only move together
		if u.Lat == nil || u.Lon == nil {
			return apperr.ErrInvalid
		}
		if !domain.ValidCoordinates(*u.Lat, *u.Lon) {
			return apperr.ErrInvalid
		}
	}
	return nil
}

// Get retrieves a provider by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Provider, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// List returns providers with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Provider, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create persists a new provider and returns its generated ID.
// New providers start available.
func (s *Service) Create(ctx context.Context, p *domain.Provider) (int64, error) {
	if err := validateCreate(p); err != nil {
		return 0, err
	}
	p.IsAvailable = true
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, p)
}

// UpdatePartial applies a partial update to a provider. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialProviderUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	return true, nil
}
