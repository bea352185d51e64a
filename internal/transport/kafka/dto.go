package kafka

import (
	"time"

	"service-assistance/internal/notify"
)

// JobDTO is the wire shape of a notification job.
type JobDTO struct {
	RequestID  int64     `json:"request_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// ToDomain converts JobDTO to notify.Job
func ToDomain(dto JobDTO) notify.Job {
	return notify.Job{
		RequestID:  dto.RequestID,
		EnqueuedAt: dto.EnqueuedAt,
	}
}

// FromJob converts notify.Job to JobDTO
func FromJob(job notify.Job) JobDTO {
	return JobDTO{
		RequestID:  job.RequestID,
		EnqueuedAt: job.EnqueuedAt,
	}
}
