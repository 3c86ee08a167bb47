package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/domain"
)

// EarningsRepo reads the append-only settlement ledger. Writes happen only
// inside the settlement transaction (see TxRepo.InsertEarning).
type EarningsRepo struct{ db *pgxpool.Pool }

// NewEarningsRepo creates a new EarningsRepo.
func NewEarningsRepo(db *pgxpool.Pool) *EarningsRepo { return &EarningsRepo{db: db} }

// ListByCourier returns the courier's settlement records, newest first.
func (r *EarningsRepo) ListByCourier(ctx context.Context, courierID string) ([]domain.EarningsRecord, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, courier_id, order_id, business_id, amount, order_total, created_at
        FROM earnings
        WHERE courier_id = $1
        ORDER BY created_at DESC, id
    `, courierID)
	if err != nil {
		return nil, fmt.Errorf("list earnings for courier %q: %w", courierID, err)
	}
	defer rows.Close()

	var out []domain.EarningsRecord
	for rows.Next() {
		var rec domain.EarningsRecord
		if err := rows.Scan(&rec.ID, &rec.CourierID, &rec.OrderID, &rec.BusinessID,
			&rec.Amount, &rec.OrderTotal, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("list earnings: scan: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByOrderID returns the settlement record for an order, or nil if none
// exists yet.
func (r *EarningsRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.EarningsRecord, error) {
	var rec domain.EarningsRecord
	err := r.db.QueryRow(ctx, `
        SELECT id, courier_id, order_id, business_id, amount, order_total, created_at
        FROM earnings
        WHERE order_id = $1
    `, orderID).Scan(&rec.ID, &rec.CourierID, &rec.OrderID, &rec.BusinessID,
		&rec.Amount, &rec.OrderTotal, &rec.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get earning for order %q: %w", orderID, err)
	}
	return &rec, nil
}
