package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-assistance/internal/domain"
	"service-assistance/internal/ports/dispatchtx"
)

// DispatchRepo represents the transactional repository for the dispatch engine.
type DispatchRepo struct {
	db *pgxpool.Pool
}

// NewDispatchRepo creates a new DispatchRepo.
func NewDispatchRepo(db *pgxpool.Pool) *DispatchRepo {
	return &DispatchRepo{db: db}
}

// WithTx opens a transaction and executes fn within it. Row locks taken by the
// wrapped repository are held until commit or rollback.
func (r *DispatchRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// roll back on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetRequestForUpdate - fetch one request under an exclusive row lock.
// Returns nil when the request does not exist.
func (r *TxRepo) GetRequestForUpdate(ctx context.Context, id int64) (*domain.AssistanceRequest, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT id, customer_name, policy_number, lat, lon, issue_desc, status, created_at
        FROM assistance_requests
        WHERE id = $1
        FOR UPDATE
    `, id)

	var req domain.AssistanceRequest
	if err := row.Scan(&req.ID, &req.CustomerName, &req.PolicyNumber, &req.Lat, &req.Lon,
		&req.IssueDesc, &req.Status, &req.CreatedAt); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request %d for update: %w", id, err)
	}
	return &req, nil
}

// ListAvailableProvidersForUpdate - lock and return every provider currently
// flagged available, ordered by id so tie-breaks are deterministic. The locks
// keep a concurrent dispatch from claiming any of these rows mid-selection.
func (r *TxRepo) ListAvailableProvidersForUpdate(ctx context.Context) ([]domain.Provider, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT id, name, phone, lat, lon, is_available, created_at
        FROM providers
        WHERE is_available
        ORDER BY id
        FOR UPDATE
    `)
	if err != nil {
		return nil, fmt.Errorf("list available providers: %w", err)
	}
	defer rows.Close()

	var out []domain.Provider
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Lat, &p.Lon, &p.IsAvailable, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SetProviderAvailability - update the availability flag.
func (r *TxRepo) SetProviderAvailability(ctx context.Context, id int64, available bool) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE providers
        SET is_available = $2
        WHERE id = $1
    `, id, available)
	if err != nil {
		return fmt.Errorf("set provider %d availability: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("provider %d not found", id)
	}
	return nil
}

// UpdateRequestStatus - update the request lifecycle status.
func (r *TxRepo) UpdateRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE assistance_requests
        SET status = $2
        WHERE id = $1
    `, id, string(status))
	if err != nil {
		return fmt.Errorf("update request %d status: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("request %d not found", id)
	}
	return nil
}

// InsertAssignment - insert a new service assignment.
func (r *TxRepo) InsertAssignment(ctx context.Context, a *domain.ServiceAssignment) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO service_assignments (request_id, provider_id, dispatched_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `, a.RequestID, a.ProviderID, a.DispatchedAt).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert assignment for request %d: %w", a.RequestID, err)
	}
	return nil
}

// GetAssignmentByRequestID - get the assignment linked to a request.
// Returns nil when no assignment exists.
func (r *TxRepo) GetAssignmentByRequestID(ctx context.Context, requestID int64) (*domain.ServiceAssignment, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT id, request_id, provider_id, dispatched_at
        FROM service_assignments
        WHERE request_id = $1
    `, requestID)

	var a domain.ServiceAssignment
	if err := row.Scan(&a.ID, &a.RequestID, &a.ProviderID, &a.DispatchedAt); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment by request %d: %w", requestID, err)
	}
	return &a, nil
}

// InsertNotificationJob - enqueue a notification job in the outbox. Riding the
// dispatch transaction means the job becomes visible only if the assignment
// commits.
func (r *TxRepo) InsertNotificationJob(ctx context.Context, requestID int64) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO notification_outbox (request_id)
        VALUES ($1)
    `, requestID)
	if err != nil {
		return fmt.Errorf("insert notification job for request %d: %w", requestID, err)
	}
	return nil
}
