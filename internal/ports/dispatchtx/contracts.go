package dispatchtx

import (
	"context"

	"service-assistance/internal/domain"
)

// Repository is the row-locked view of storage available inside a dispatch
// transaction. Locks taken here are held until the enclosing transaction
// commits or rolls back.
type Repository interface {
	GetRequestForUpdate(ctx context.Context, id int64) (*domain.AssistanceRequest, error)
	ListAvailableProvidersForUpdate(ctx context.Context) ([]domain.Provider, error)
	SetProviderAvailability(ctx context.Context, id int64, available bool) error
	UpdateRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	InsertAssignment(ctx context.Context, a *domain.ServiceAssignment) error
	GetAssignmentByRequestID(ctx context.Context, requestID int64) (*domain.ServiceAssignment, error)
	InsertNotificationJob(ctx context.Context, requestID int64) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
