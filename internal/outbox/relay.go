package outbox

import (
	"context"
	"time"

	"service-assistance/internal/domain"
	"service-assistance/internal/logx"
)

type outboxRepository interface {
	PublishPending(ctx context.Context, limit int, publish func(domain.OutboxJob) error) (int, error)
}

type counter interface {
	Inc()
}

// Relay drains pending notification jobs from the outbox table and hands them
// to the publish callback. Publishing is at-least-once: a job is only marked
// published after the callback succeeds.
type Relay struct {
	logger    logx.Logger
	repo      outboxRepository
	publish   func(domain.OutboxJob) error
	interval  time.Duration
	batchSize int
	published counter
}

// NewRelay creates a relay. interval and batchSize fall back to sane defaults
// when non-positive.
func NewRelay(logger logx.Logger, repo outboxRepository, publish func(domain.OutboxJob) error, interval time.Duration, batchSize int, published counter) *Relay {
	if interval <= 0 {
		interval = time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Relay{
		logger:    logger,
		repo:      repo,
		publish:   publish,
		interval:  interval,
		batchSize: batchSize,
		published: published,
	}
}

// Run polls the outbox until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	r.drain(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

// drain keeps publishing full batches until the table runs dry or an error
// pauses the relay until the next tick.
func (r *Relay) drain(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		n, err := r.repo.PublishPending(ctx, r.batchSize, r.publish)
		if n > 0 {
			for i := 0; i < n; i++ {
				r.published.Inc()
			}
			r.logger.Info("outbox jobs published", logx.Int("count", n))
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Error("outbox publish failed", logx.Any("error", err))
			return
		}
		if n < r.batchSize {
			return
		}
	}
}
