package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// DeliveryAddress is the structured drop-off location of an order.
type DeliveryAddress struct {
	Text     string
	Location GeoPoint
}

// Order represents one customer purchase moving through fulfillment.
// CourierID is nil while the order awaits a courier and is set exactly once,
// by the winning claim.
type Order struct {
	ID              string
	BusinessID      string
	CourierID       *string
	Status          OrderStatus
	DeliveryAddress DeliveryAddress
	TotalAmount     decimal.Decimal
	CourierEarning  *decimal.Decimal

	CreatedAt         time.Time
	AcceptedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveryStartedAt *time.Time
	DeliveredAt       *time.Time

	UpdatedAt     time.Time
	UpdatedBy     string
	UpdatedByRole string
}

// AssignedTo reports whether the order is currently owned by the given courier.
func (o *Order) AssignedTo(courierID string) bool {
	return o.CourierID != nil && *o.CourierID == courierID
}

// AvailableOrder is a discovery listing entry: an order awaiting a courier,
// enriched with its business pickup point and the distance from the caller.
type AvailableOrder struct {
	OrderID          string
	BusinessID       string
	BusinessName     string
	BusinessAddress  string
	BusinessLocation GeoPoint
	DistanceM        float64
	PickupEstimate   time.Duration
	TotalAmount      decimal.Decimal
	DeliveryAddress  DeliveryAddress
	CreatedAt        time.Time
}

// AcceptedOrder is the result of a successful claim, enriched with the pickup
// point. Business data is best-effort: a missing directory record degrades to
// placeholder text and zero coordinates.
type AcceptedOrder struct {
	Order          Order
	PickupAddress  string
	PickupLocation GeoPoint
}

// Settlement is the result of the final deliver transition.
type Settlement struct {
	Order      Order
	EarningsID string
	Earning    decimal.Decimal
}
