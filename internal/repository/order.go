package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/settlementtx"
)

const roleCourier = "courier"

const orderColumns = `id, business_id, courier_id, status, delivery_address,
       delivery_lat, delivery_lng, total_amount, courier_earning,
       created_at, accepted_at, picked_up_at, delivery_started_at, delivered_at,
       updated_at, updated_by, updated_by_role`

// row is the subset of pgx.Row / pgx.Rows used by the scan helper.
type row interface {
	Scan(dest ...any) error
}

func scanOrder(r row) (*domain.Order, error) {
	var (
		o       domain.Order
		earning decimal.NullDecimal
	)
	err := r.Scan(
		&o.ID, &o.BusinessID, &o.CourierID, &o.Status, &o.DeliveryAddress.Text,
		&o.DeliveryAddress.Location.Lat, &o.DeliveryAddress.Location.Lng,
		&o.TotalAmount, &earning,
		&o.CreatedAt, &o.AcceptedAt, &o.PickedUpAt, &o.DeliveryStartedAt, &o.DeliveredAt,
		&o.UpdatedAt, &o.UpdatedBy, &o.UpdatedByRole,
	)
	if err != nil {
		return nil, err
	}
	if earning.Valid {
		o.CourierEarning = &earning.Decimal
	}
	return &o, nil
}

// OrderRepo is the order store. Every mutation is a conditional update
// predicated on the current status (and owner, after the claim), so the
// "first courier wins" property holds across processes without any
// in-process locking.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// Get - returns an order by its ID, or nil if it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %q: %w", id, err)
	}
	return o, nil
}

// ListAwaitingCourier returns all orders still waiting for a courier, oldest
// first. The ordering is deterministic so callers can sort stably on top.
func (r *OrderRepo) ListAwaitingCourier(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE status=$1 ORDER BY created_at, id`,
		domain.StatusCourierPending)
	if err != nil {
		return nil, fmt.Errorf("list awaiting courier: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list awaiting courier: scan: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Insert creates a new order awaiting a courier. Repeated inserts for the
// same id are no-ops; the bool reports whether a row was actually written.
func (r *OrderRepo) Insert(ctx context.Context, o *domain.Order) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        INSERT INTO orders (id, business_id, status, delivery_address,
                            delivery_lat, delivery_lng, total_amount,
                            created_at, updated_at, updated_by, updated_by_role)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $9, $10)
        ON CONFLICT (id) DO NOTHING
    `, o.ID, o.BusinessID, o.Status, o.DeliveryAddress.Text,
		o.DeliveryAddress.Location.Lat, o.DeliveryAddress.Location.Lng,
		o.TotalAmount, o.CreatedAt, o.UpdatedBy, o.UpdatedByRole)
	if err != nil {
		return false, fmt.Errorf("insert order %q: %w", o.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// DeleteIfUnclaimed removes the order only while no courier has claimed it.
// Cancellations arriving after a claim are ignored here; the bool reports
// whether a row was removed.
func (r *OrderRepo) DeleteIfUnclaimed(ctx context.Context, orderID string) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM orders WHERE id=$1 AND status=$2 AND courier_id IS NULL`,
		orderID, domain.StatusCourierPending)
	if err != nil {
		return false, fmt.Errorf("delete unclaimed order %q: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Claim atomically assigns the order to the courier. The update matches only
// while the order is still courier_pending with no courier set, so exactly
// one concurrent caller gets a non-nil result; everyone else gets nil.
func (r *OrderRepo) Claim(ctx context.Context, orderID, courierID string, now time.Time) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
        UPDATE orders
        SET status          = $3,
            courier_id      = $2,
            accepted_at     = $4,
            updated_at      = $4,
            updated_by      = $2,
            updated_by_role = $5
        WHERE id = $1 AND status = $6 AND courier_id IS NULL
        RETURNING `+orderColumns,
		orderID, courierID, domain.StatusCourierAssigned, now, roleCourier,
		domain.StatusCourierPending))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim order %q: %w", orderID, err)
	}
	return o, nil
}

// transition timestamp column per target status. Whitelist for the dynamic
// SET clause below.
var transitionColumns = map[domain.OrderStatus]string{
	domain.StatusPickedUp:   "picked_up_at",
	domain.StatusDelivering: "delivery_started_at",
}

func (r *OrderRepo) advance(ctx context.Context, orderID, courierID string, from, to domain.OrderStatus, now time.Time) (*domain.Order, error) {
	col, ok := transitionColumns[to]
	if !ok {
		return nil, fmt.Errorf("advance order %q: no transition to %q", orderID, to)
	}
	q := fmt.Sprintf(`
        UPDATE orders
        SET status          = $3,
            %s              = $4,
            updated_at      = $4,
            updated_by      = $2,
            updated_by_role = $5
        WHERE id = $1 AND status = $6 AND courier_id = $2
        RETURNING `+orderColumns, col)

	o, err := scanOrder(r.db.QueryRow(ctx, q,
		orderID, courierID, to, now, roleCourier, from))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("advance order %q to %s: %w", orderID, to, err)
	}
	return o, nil
}

// MarkPickedUp applies the courier_assigned → picked_up transition.
// Nil result means the predicate did not match.
func (r *OrderRepo) MarkPickedUp(ctx context.Context, orderID, courierID string, now time.Time) (*domain.Order, error) {
	return r.advance(ctx, orderID, courierID, domain.StatusCourierAssigned, domain.StatusPickedUp, now)
}

// MarkDelivering applies the picked_up → delivering transition.
// Nil result means the predicate did not match.
func (r *OrderRepo) MarkDelivering(ctx context.Context, orderID, courierID string, now time.Time) (*domain.Order, error) {
	return r.advance(ctx, orderID, courierID, domain.StatusPickedUp, domain.StatusDelivering, now)
}

// WithTx opens a settlement transaction and executes fn within it.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx settlementtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo is the settlement transaction scope over a single pgx transaction.
type TxRepo struct {
	tx pgx.Tx
}

// MarkDelivered applies the delivering → delivered transition and bakes the
// earning into the order. Nil result means the predicate did not match.
func (r *TxRepo) MarkDelivered(ctx context.Context, orderID, courierID string, earning decimal.Decimal, now time.Time) (*domain.Order, error) {
	o, err := scanOrder(r.tx.QueryRow(ctx, `
        UPDATE orders
        SET status          = $3,
            courier_earning = $4,
            delivered_at    = $5,
            updated_at      = $5,
            updated_by      = $2,
            updated_by_role = $6
        WHERE id = $1 AND status = $7 AND courier_id = $2
        RETURNING `+orderColumns,
		orderID, courierID, domain.StatusDelivered, earning, now, roleCourier,
		domain.StatusDelivering))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("mark order %q delivered: %w", orderID, err)
	}
	return o, nil
}

// InsertEarning appends one settlement record.
func (r *TxRepo) InsertEarning(ctx context.Context, rec *domain.EarningsRecord) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO earnings (id, courier_id, order_id, business_id, amount, order_total, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, rec.ID, rec.CourierID, rec.OrderID, rec.BusinessID, rec.Amount, rec.OrderTotal, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert earning for order %q: %w", rec.OrderID, err)
	}
	return nil
}
