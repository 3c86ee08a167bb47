package settlementtx

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"courier-dispatch/internal/domain"
)

// Repository is the settlement transaction scope: the final deliver
// transition and the earnings append happen against the same transaction,
// so an order never ends up delivered without its earnings record.
type Repository interface {
	// MarkDelivered applies the conditional delivered transition. It matches
	// only while the order is delivering and owned by courierID; nil result
	// means the predicate did not match.
	MarkDelivered(ctx context.Context, orderID, courierID string, earning decimal.Decimal, now time.Time) (*domain.Order, error)
	InsertEarning(ctx context.Context, rec *domain.EarningsRecord) error
}

// Runner is a settlement transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
