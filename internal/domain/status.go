package domain

// OrderStatus represents the courier-facing state of an order.
type OrderStatus string

// Order lifecycle states, in transition order.
const (
	StatusCourierPending  OrderStatus = "courier_pending"
	StatusCourierAssigned OrderStatus = "courier_assigned"
	StatusPickedUp        OrderStatus = "picked_up"
	StatusDelivering      OrderStatus = "delivering"
	StatusDelivered       OrderStatus = "delivered"
)

// lifecycle is the fixed linear transition sequence. No skipping, no going back.
var lifecycle = [...]OrderStatus{
	StatusCourierPending,
	StatusCourierAssigned,
	StatusPickedUp,
	StatusDelivering,
	StatusDelivered,
}

// Valid checks if the OrderStatus is one of the courier-facing states.
func (s OrderStatus) Valid() bool {
	for _, v := range lifecycle {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the status that directly follows s, or "" if s is terminal
// or not part of the lifecycle.
func (s OrderStatus) Next() OrderStatus {
	for i, v := range lifecycle[:len(lifecycle)-1] {
		if s == v {
			return lifecycle[i+1]
		}
	}
	return ""
}

// Terminal reports whether no further transition exists from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered
}
