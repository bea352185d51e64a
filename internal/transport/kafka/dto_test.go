package kafka_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"service-assistance/internal/notify"
	"service-assistance/internal/transport/kafka"
)

func TestJobDTO_RoundTrip(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	job := notify.Job{RequestID: 11, EnqueuedAt: ts}

	got := kafka.ToDomain(kafka.FromJob(job))
	require.Equal(t, job, got)
}

func TestPermanent_Unwraps(t *testing.T) {
	t.Parallel()

	require.EqualError(t, kafka.Permanent(nil), "permanent error")

	err := kafka.Permanent(assertErr{})
	require.ErrorAs(t, err, &assertErr{})
}

type assertErr struct{}

func (assertErr) Error() string { return "inner" }
