package dispatch

import (
	"context"
	"time"

	"service-assistance/internal/apperr"
	"service-assistance/internal/domain"
	"service-assistance/internal/logx"
	"service-assistance/internal/ports/dispatchtx"
)

// Service - the dispatch engine. It is the only writer of request status and
// provider availability; every mutation happens inside a single locked
// transaction, request row first, provider rows second.
type Service struct {
	repo             dispatchRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures the dispatch Service.
func NewService(r dispatchRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Dispatch atomically assigns the nearest available provider to a pending
// request. The request row is locked before the provider rows; both locks are
// held until commit, so concurrent dispatches serialize instead of claiming
// the same provider. The notification job is written to the outbox inside the
// same transaction and published only after commit.
func (s *Service) Dispatch(ctx context.Context, requestID int64) (domain.DispatchResult, error) {
	if requestID <= 0 {
		return domain.DispatchResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.DispatchResult

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperr.ErrNotFound
		}
		if req.Status != domain.StatusPending {
			return apperr.ErrInvalidState
		}

		providers, err := tx.ListAvailableProvidersForUpdate(ctx)
		if err != nil {
			return err
		}
		if len(providers) == 0 {
			return apperr.ErrNoProviders
		}

		chosen, dist := nearestProvider(req.Lat, req.Lon, providers)

		// The FOR UPDATE locks make a busy provider in this set impossible;
		// if it happens anyway the transaction is aborted and the bug logged.
		if !chosen.IsAvailable {
			s.logger.Error("invariant violation: locked provider not available",
				logx.Int64("request_id", req.ID),
				logx.Int64("provider_id", chosen.ID),
			)
			return apperr.ErrProviderBusy
		}

		if err := tx.SetProviderAvailability(ctx, chosen.ID, false); err != nil {
			return err
		}

		now := s.now()
		a := &domain.ServiceAssignment{
			RequestID:    req.ID,
			ProviderID:   chosen.ID,
			DispatchedAt: now,
		}
		if err := tx.InsertAssignment(ctx, a); err != nil {
			return err
		}

		if err := tx.UpdateRequestStatus(ctx, req.ID, domain.StatusDispatched); err != nil {
			return err
		}

		if err := tx.InsertNotificationJob(ctx, req.ID); err != nil {
			return err
		}

		result = domain.DispatchResult{
			AssignmentID: a.ID,
			RequestID:    req.ID,
			ProviderID:   chosen.ID,
			DistanceKm:   dist,
			DispatchedAt: now,
		}
		return nil
	})
	if err != nil {
		return domain.DispatchResult{}, err
	}

	s.logger.Info("provider dispatched",
		logx.String("event", "provider_dispatched"),
		logx.Int64("request_id", result.RequestID),
		logx.Int64("provider_id", result.ProviderID),
		logx.Float64("distance_km", result.DistanceKm),
	)

	return result, nil
}

// Complete finishes a dispatched request and releases its provider.
func (s *Service) Complete(ctx context.Context, requestID int64) (domain.ReleaseResult, error) {
	if requestID <= 0 {
		return domain.ReleaseResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.ReleaseResult

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperr.ErrNotFound
		}
		if req.Status != domain.StatusDispatched {
			return apperr.ErrInvalidState
		}

		a, err := tx.GetAssignmentByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if a == nil {
			// invariant guard: a DISPATCHED request always has an assignment
			return apperr.ErrNoAssignment
		}

		if err := tx.SetProviderAvailability(ctx, a.ProviderID, true); err != nil {
			return err
		}
		if err := tx.UpdateRequestStatus(ctx, req.ID, domain.StatusCompleted); err != nil {
			return err
		}

		result = domain.ReleaseResult{
			RequestID:  req.ID,
			ProviderID: a.ProviderID,
			Status:     domain.StatusCompleted,
		}
		return nil
	})
	if err != nil {
		return domain.ReleaseResult{}, err
	}

	s.logger.Info("request completed",
		logx.String("event", "request_completed"),
		logx.Int64("request_id", result.RequestID),
		logx.Int64("provider_id", result.ProviderID),
	)

	return result, nil
}

// Cancel cancels a request. Cancelling an already cancelled request is a
// no-op; cancelling a completed one fails. A dispatched request releases its
// provider before the status flips.
func (s *Service) Cancel(ctx context.Context, requestID int64) (domain.ReleaseResult, error) {
	if requestID <= 0 {
		return domain.ReleaseResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.ReleaseResult

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperr.ErrNotFound
		}

		switch req.Status {
		case domain.StatusCompleted:
			return apperr.ErrInvalidState
		case domain.StatusCancelled:
			// idempotent
			result = domain.ReleaseResult{RequestID: req.ID, Status: domain.StatusCancelled}
			return nil
		}

		if req.Status == domain.StatusDispatched {
			a, err := tx.GetAssignmentByRequestID(ctx, req.ID)
			if err != nil {
				return err
			}
			if a != nil {
				if err := tx.SetProviderAvailability(ctx, a.ProviderID, true); err != nil {
					return err
				}
				result.ProviderID = a.ProviderID
			}
		}

		if err := tx.UpdateRequestStatus(ctx, req.ID, domain.StatusCancelled); err != nil {
			return err
		}

		result.RequestID = req.ID
		result.Status = domain.StatusCancelled
		return nil
	})
	if err != nil {
		return domain.ReleaseResult{}, err
	}

	s.logger.Info("request cancelled",
		logx.String("event", "request_cancelled"),
		logx.Int64("request_id", result.RequestID),
		logx.Int64("provider_id", result.ProviderID),
	)

	return result, nil
}
