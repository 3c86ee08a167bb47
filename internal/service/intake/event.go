package intake

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a single order-placement event from the ordering system.
type Event struct {
	OrderID         string          `json:"order_id"`
	BusinessID      string          `json:"business_id"`
	Status          string          `json:"status"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryLat     float64         `json:"delivery_lat"`
	DeliveryLng     float64         `json:"delivery_lng"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}
