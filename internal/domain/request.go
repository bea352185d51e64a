package domain

import "time"

// RequestStatus represents the lifecycle status of an assistance request.
type RequestStatus string

// List of possible request statuses
const (
	StatusPending    RequestStatus = "PENDING"
	StatusDispatched RequestStatus = "DISPATCHED"
	StatusCompleted  RequestStatus = "COMPLETED"
	StatusCancelled  RequestStatus = "CANCELLED"
)

// List of allowed statuses
var allowedStatuses = [...]RequestStatus{
	StatusPending, StatusDispatched, StatusCompleted, StatusCancelled,
}

// Valid checks if the RequestStatus is valid
func (s RequestStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition may leave the status.
func (s RequestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AssistanceRequest represents a customer's request for service at a location.
// Created in PENDING by the caller; status is mutated only by the dispatch engine.
type AssistanceRequest struct {
	ID           int64
	CustomerName string
	PolicyNumber string
	Lat          float64
	Lon          float64
	IssueDesc    string
	Status       RequestStatus
	CreatedAt    time.Time
}
