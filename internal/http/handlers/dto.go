package handlers

import (
	"time"

	"service-assistance/internal/domain"
)

type providerDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type createProviderRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type updateProviderRequest struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

type requestDTO struct {
	ID           int64                `json:"id"`
	CustomerName string               `json:"customer_name"`
	PolicyNumber string               `json:"policy_number"`
	Lat          float64              `json:"lat"`
	Lon          float64              `json:"lon"`
	IssueDesc    string               `json:"issue_description"`
	Status       domain.RequestStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

type createRequestRequest struct {
	CustomerName string  `json:"customer_name"`
	PolicyNumber string  `json:"policy_number"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	IssueDesc    string  `json:"issue_description"`
}

type dispatchResponse struct {
	AssignmentID int64     `json:"assignment_id"`
	RequestID    int64     `json:"request_id"`
	ProviderID   int64     `json:"provider_id"`
	DistanceKm   float64   `json:"distance_km"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

type releaseResponse struct {
	RequestID  int64                `json:"request_id"`
	ProviderID int64                `json:"provider_id,omitempty"`
	Status     domain.RequestStatus `json:"status"`
}
