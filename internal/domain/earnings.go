package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EarningsRecord is an append-only settlement entry, created once per
// delivered order. Amount is the payout rate in effect at delivery time.
type EarningsRecord struct {
	ID         string
	CourierID  string
	OrderID    string
	BusinessID string
	Amount     decimal.Decimal
	OrderTotal decimal.Decimal
	CreatedAt  time.Time
}
