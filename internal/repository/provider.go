package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-assistance/internal/apperr"
	"service-assistance/internal/domain"
)

// ProviderRepo represents provider repository.
type ProviderRepo struct{ db *pgxpool.Pool }

// NewProviderRepo creates a new ProviderRepo.
func NewProviderRepo(db *pgxpool.Pool) *ProviderRepo { return &ProviderRepo{db: db} }

// Get - returns provider by its ID.
func (r *ProviderRepo) Get(ctx context.Context, id int64) (*domain.Provider, error) {
	var p domain.Provider
	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, lat, lon, is_available, created_at FROM providers WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Phone, &p.Lat, &p.Lon, &p.IsAvailable, &p.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider %d: %w", id, err)
	}
	return &p, nil
}

// List returns providers ordered by id. If limit/offset are nil, returns the full list.
func (r *ProviderRepo) List(ctx context.Context, limit, offset *int) ([]domain.Provider, error) {
	q := `SELECT id, name, phone, lat, lon, is_available, created_at FROM providers ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Provider, 0, capacity)
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Lat, &p.Lon, &p.IsAvailable, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create - creates a new provider.
func (r *ProviderRepo) Create(ctx context.Context, p *domain.Provider) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO providers(name, phone, lat, lon, is_available) VALUES($1,$2,$3,$4,$5) RETURNING id`,
		p.Name, p.Phone, p.Lat, p.Lon, p.IsAvailable).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create provider: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a provider and returns true if a row was affected.
func (r *ProviderRepo) UpdatePartial(ctx context.Context, u domain.PartialProviderUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE providers
        SET
            name         = COALESCE($2, name),
            phone        = COALESCE($3, phone),
            lat          = COALESCE($4, lat),
            lon          = COALESCE($5, lon),
            is_available = COALESCE($6, is_available)
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, u.Lat, u.Lon, u.IsAvailable)

	if err != nil {
		return false, fmt.Errorf("update provider %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
