//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch

package dispatch

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/settlementtx"
)

// orderRepository defines the order store operations required by the
// assignment service. Claim/MarkPickedUp/MarkDelivering are conditional
// updates: a nil order with a nil error means the predicate did not match.
type orderRepository interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListAwaitingCourier(ctx context.Context) ([]domain.Order, error)
	Claim(ctx context.Context, orderID, courierID string, now time.Time) (*domain.Order, error)
	MarkPickedUp(ctx context.Context, orderID, courierID string, now time.Time) (*domain.Order, error)
	MarkDelivering(ctx context.Context, orderID, courierID string, now time.Time) (*domain.Order, error)
	WithTx(ctx context.Context, fn func(tx settlementtx.Repository) error) error
}

// businessDirectory is the read-only lookup of pickup points.
type businessDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	ListByIDs(ctx context.Context, ids []string) (map[string]domain.Business, error)
}

// settingsProvider exposes the payout rate. ok=false means the setting is
// absent and the caller's fallback applies.
type settingsProvider interface {
	CourierRate(ctx context.Context) (rate decimal.Decimal, ok bool, err error)
}

// earningsLedger is the read side of the settlement ledger.
type earningsLedger interface {
	ListByCourier(ctx context.Context, courierID string) ([]domain.EarningsRecord, error)
}

// counter is a minimal metrics counter.
type counter interface {
	Inc()
}
