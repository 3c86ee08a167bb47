package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/domain"
)

// BusinessRepo is the read-only business directory. Business records are
// owned and mutated by the business-management flows, not by this service.
type BusinessRepo struct{ db *pgxpool.Pool }

// NewBusinessRepo creates a new BusinessRepo.
func NewBusinessRepo(db *pgxpool.Pool) *BusinessRepo { return &BusinessRepo{db: db} }

func buildBusiness(id, name, address string, lat, lng *float64) domain.Business {
	b := domain.Business{ID: id, Name: name, Address: address}
	if lat != nil && lng != nil {
		b.Location = &domain.GeoPoint{Lat: *lat, Lng: *lng}
	}
	return b
}

// GetByID - returns a business by its ID, or nil if it does not exist.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	var (
		name, address string
		lat, lng      *float64
	)
	err := r.db.QueryRow(ctx,
		`SELECT name, address, lat, lng FROM businesses WHERE id=$1`, id,
	).Scan(&name, &address, &lat, &lng)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business %q: %w", id, err)
	}
	b := buildBusiness(id, name, address, lat, lng)
	return &b, nil
}

// ListByIDs returns the businesses for the given ids, keyed by id. Missing
// ids are simply absent from the result.
func (r *BusinessRepo) ListByIDs(ctx context.Context, ids []string) (map[string]domain.Business, error) {
	if len(ids) == 0 {
		return map[string]domain.Business{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, address, lat, lng FROM businesses WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Business, len(ids))
	for rows.Next() {
		var (
			id, name, address string
			lat, lng          *float64
		)
		if err := rows.Scan(&id, &name, &address, &lat, &lng); err != nil {
			return nil, fmt.Errorf("list businesses: scan: %w", err)
		}
		out[id] = buildBusiness(id, name, address, lat, lng)
	}
	return out, rows.Err()
}
