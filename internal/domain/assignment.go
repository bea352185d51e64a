package domain

import "time"

// ServiceAssignment is the durable record linking one request to the provider
// dispatched for it. At most one assignment exists per request; the record is
// never mutated after creation.
type ServiceAssignment struct {
	ID           int64
	RequestID    int64
	ProviderID   int64
	DispatchedAt time.Time
}

// DispatchResult - struct representing the result of dispatching a request.
type DispatchResult struct {
	AssignmentID int64
	RequestID    int64
	ProviderID   int64
	DistanceKm   float64
	DispatchedAt time.Time
}

// ReleaseResult - struct representing the result of completing or cancelling
// a dispatched request.
type ReleaseResult struct {
	RequestID  int64
	ProviderID int64
	Status     RequestStatus
}

// OutboxJob is a committed notification job waiting to be published.
type OutboxJob struct {
	ID        int64
	RequestID int64
	CreatedAt time.Time
}
