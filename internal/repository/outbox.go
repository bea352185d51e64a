package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-assistance/internal/domain"
)

// OutboxRepo represents notification outbox repository.
type OutboxRepo struct{ db *pgxpool.Pool }

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(db *pgxpool.Pool) *OutboxRepo { return &OutboxRepo{db: db} }

// PublishPending claims up to limit unpublished jobs under SKIP LOCKED row
// locks, runs publish for each, and marks the published ones. A publish
// failure aborts the batch; unmarked rows are retried on the next poll, so
// delivery is at-least-once.
func (r *OutboxRepo) PublishPending(ctx context.Context, limit int, publish func(domain.OutboxJob) error) (int, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin outbox tx: %w", err)
	}
	defer func() {
		// no-op when the tx already committed
		_ = tx.Rollback(ctx)
	}()

	rows, err := tx.Query(ctx, `
        SELECT id, request_id, created_at
        FROM notification_outbox
        WHERE published_at IS NULL
        ORDER BY id
        LIMIT $1
        FOR UPDATE SKIP LOCKED
    `, limit)
	if err != nil {
		return 0, fmt.Errorf("select pending outbox jobs: %w", err)
	}

	var jobs []domain.OutboxJob
	for rows.Next() {
		var j domain.OutboxJob
		if err := rows.Scan(&j.ID, &j.RequestID, &j.CreatedAt); err != nil {
			rows.Close()
			return 0, err
		}
		jobs = append(jobs, j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	for _, j := range jobs {
		if err := publish(j); err != nil {
			return 0, fmt.Errorf("publish outbox job %d: %w", j.ID, err)
		}
		if _, err := tx.Exec(ctx, `
            UPDATE notification_outbox SET published_at = now() WHERE id = $1
        `, j.ID); err != nil {
			return 0, fmt.Errorf("mark outbox job %d published: %w", j.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit outbox tx: %w", err)
	}
	return len(jobs), nil
}
