package notify

import (
	"context"
	"errors"
	"time"

	"service-assistance/internal/logx"
)

// ErrRetriesExhausted marks a job whose retry budget ran out. The failure has
// already been escalated (log + counter) when this is returned.
var ErrRetriesExhausted = errors.New("notification retries exhausted")

// RetryConfig describes the Scheduler retry behaviour.
type RetryConfig struct {
	MaxRetries int           // retries after the first attempt
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // backoff cap
}

// Scheduler runs notification jobs with exponential-backoff retry. The delay
// before retry n is min(BaseDelay<<n, MaxDelay): with a base of one minute and
// a 16-minute cap that is 1, 2, 4, 8, 16 minutes. The attempt counter is local
// to one job invocation.
type Scheduler struct {
	next     notifier
	logger   logx.Logger
	retries  counter
	failures counter
	cfg      RetryConfig
	sleep    func(context.Context, time.Duration) bool
}

// NewScheduler creates a Scheduler; next must not be nil.
func NewScheduler(next notifier, logger logx.Logger, retries, failures counter, cfg RetryConfig) *Scheduler {
	if next == nil {
		return nil
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Minute
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 16 * time.Minute
	}
	return &Scheduler{
		next:     next,
		logger:   logger,
		retries:  retries,
		failures: failures,
		cfg:      cfg,
		sleep:    sleepWithContext,
	}
}

// Handle runs one notification job to success or retry exhaustion. A terminal
// failure is escalated via error log and failure counter, then surfaced as
// ErrRetriesExhausted so the transport can acknowledge without redelivering.
func (s *Scheduler) Handle(ctx context.Context, job Job) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		err := s.next.Notify(ctx, job.RequestID)
		if err == nil {
			s.logger.Info("insurance notified",
				logx.Int64("request_id", job.RequestID),
				logx.Int("attempt", attempt),
			)
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt == s.cfg.MaxRetries {
			break
		}

		delay := backoff(s.cfg.BaseDelay, s.cfg.MaxDelay, attempt)
		if s.retries != nil {
			s.retries.Inc()
		}
		s.logger.Warn("insurance notify retry",
			logx.Int64("request_id", job.RequestID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !s.sleep(ctx, delay) {
			return ctx.Err()
		}
	}

	if s.failures != nil {
		s.failures.Inc()
	}
	s.logger.Error("insurance notify failed permanently",
		logx.Int64("request_id", job.RequestID),
		logx.Int("retries", s.cfg.MaxRetries),
		logx.Any("err", lastErr),
	)
	return ErrRetriesExhausted
}

// backoff computes the retry delay for a zero-based attempt counter.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << attempt
	if d > max || d <= 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
