package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-assistance/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceeded    prometheus.Counter `name:"rate_limit_exceeded_total"`
	NotificationRetries  prometheus.Counter `name:"notification_retries_total"`
	NotificationFailures prometheus.Counter `name:"notification_failures_total"`
	OutboxPublished      prometheus.Counter `name:"outbox_published_total"`
}

func newMetrics() metricsOut {
	return metricsOut{
		RateLimitExceeded:    registerCounter(metrics.NewRateLimitExceededTotal()),
		NotificationRetries:  registerCounter(metrics.NewNotificationRetriesTotal()),
		NotificationFailures: registerCounter(metrics.NewNotificationFailuresTotal()),
		OutboxPublished:      registerCounter(metrics.NewOutboxPublishedTotal()),
	}
}

// registerCounter registers c, reusing the existing collector when a test
// builds more than one container in a process.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}
