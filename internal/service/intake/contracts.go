//go:generate mockgen -source=contracts.go -destination=intake_mocks_test.go -package=intake_test

package intake

import (
	"context"

	"courier-dispatch/internal/domain"
)

// OrderStore abstracts the subset of order store operations needed by the
// intake Processor when handling order events.
type OrderStore interface {
	Insert(ctx context.Context, o *domain.Order) (bool, error)
	DeleteIfUnclaimed(ctx context.Context, orderID string) (bool, error)
}
