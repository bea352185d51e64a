package app

import (
	"context"
	"errors"

	"service-assistance/internal/notify"
	"service-assistance/internal/transport/kafka"
)

// makeNotificationsHandler adapts the retry scheduler to the Kafka consumer.
// An exhausted retry budget is already escalated by the scheduler, so it maps
// to a permanent error and the message is acknowledged.
func makeNotificationsHandler(s *notify.Scheduler) kafka.HandleFunc {
	return func(ctx context.Context, job notify.Job) error {
		err := s.Handle(ctx, job)
		if errors.Is(err, notify.ErrRetriesExhausted) {
			return kafka.Permanent(err)
		}
		return err
	}
}
