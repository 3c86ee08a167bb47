package handlers

import (
	"time"

	"github.com/shopspring/decimal"
)

type locationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type availableOrderDTO struct {
	OrderID          string          `json:"order_id"`
	BusinessID       string          `json:"business_id"`
	BusinessName     string          `json:"business_name"`
	BusinessAddress  string          `json:"business_address"`
	BusinessLocation locationDTO     `json:"business_location"`
	DistanceM        float64         `json:"distance_m"`
	PickupEstimateS  int64           `json:"pickup_estimate_s"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DeliveryAddress  string          `json:"delivery_address"`
	CreatedAt        time.Time       `json:"created_at"`
}

type orderDTO struct {
	OrderID     string     `json:"order_id"`
	BusinessID  string     `json:"business_id"`
	CourierID   *string    `json:"courier_id,omitempty"`
	Status      string     `json:"status"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	StartedAt   *time.Time `json:"delivery_started_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type acceptResponse struct {
	orderDTO
	PickupAddress   string          `json:"pickup_address"`
	PickupLocation  locationDTO     `json:"pickup_location"`
	DeliveryAddress string          `json:"delivery_address"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

type transitionResponse struct {
	orderDTO
	Message string `json:"message"`
}

type deliverResponse struct {
	orderDTO
	EarningsID     string          `json:"earnings_id"`
	CourierEarning decimal.Decimal `json:"courier_earning"`
	Message        string          `json:"message"`
}

type earningDTO struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	BusinessID string          `json:"business_id"`
	Amount     decimal.Decimal `json:"amount"`
	OrderTotal decimal.Decimal `json:"order_total"`
	CreatedAt  time.Time       `json:"created_at"`
}
