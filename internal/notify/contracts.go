package notify

import (
	"context"
	"time"
)

// Job is a single insurance notification job for a committed assignment.
// It carries only the request identity; every attempt is independent, so the
// job tolerates at-least-once delivery.
type Job struct {
	RequestID  int64
	EnqueuedAt time.Time
}

// notifier performs the external insurance notification call.
type notifier interface {
	Notify(ctx context.Context, requestID int64) error
}

type counter interface {
	Inc()
}
