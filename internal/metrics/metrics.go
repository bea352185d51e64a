package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewNotificationRetriesTotal returns a Prometheus counter for the number of notification delivery retries
func NewNotificationRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_retries_total",
		Help: "Total number of notification delivery retry attempts",
	})
}

// NewNotificationFailuresTotal returns a Prometheus counter for notifications dropped after exhausting retries
func NewNotificationFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_failures_total",
		Help: "Total number of notifications dropped after exhausting all retries",
	})
}

// NewOutboxPublishedTotal returns a Prometheus counter for notification jobs published from the outbox
func NewOutboxPublishedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "outbox_published_total",
		Help: "Total number of notification jobs published from the outbox",
	})
}
