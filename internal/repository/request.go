package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-assistance/internal/domain"
)

// RequestRepo represents assistance request repository.
type RequestRepo struct{ db *pgxpool.Pool }

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(db *pgxpool.Pool) *RequestRepo { return &RequestRepo{db: db} }

// Create - persists a new request in PENDING and returns its generated ID.
func (r *RequestRepo) Create(ctx context.Context, req *domain.AssistanceRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO assistance_requests(customer_name, policy_number, lat, lon, issue_desc, status)
        VALUES($1,$2,$3,$4,$5,$6)
        RETURNING id
    `, req.CustomerName, req.PolicyNumber, req.Lat, req.Lon, req.IssueDesc, string(domain.StatusPending)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	return id, nil
}

// Get - returns request by its ID.
func (r *RequestRepo) Get(ctx context.Context, id int64) (*domain.AssistanceRequest, error) {
	var req domain.AssistanceRequest
	err := r.db.QueryRow(ctx, `
        SELECT id, customer_name, policy_number, lat, lon, issue_desc, status, created_at
        FROM assistance_requests
        WHERE id = $1
    `, id).Scan(&req.ID, &req.CustomerName, &req.PolicyNumber, &req.Lat, &req.Lon,
		&req.IssueDesc, &req.Status, &req.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request %d: %w", id, err)
	}
	return &req, nil
}
