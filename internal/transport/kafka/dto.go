package kafka

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"courier-dispatch/internal/service/intake"
)

// EventDTO is the wire shape of an order-placement event.
type EventDTO struct {
	OrderID         string          `json:"order_id"`
	BusinessID      string          `json:"business_id"`
	Status          string          `json:"status"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryLat     float64         `json:"delivery_lat"`
	DeliveryLng     float64         `json:"delivery_lng"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToDomain converts EventDTO to intake.Event.
func ToDomain(dto EventDTO) intake.Event {
	return intake.Event{
		OrderID:         strings.TrimSpace(dto.OrderID),
		BusinessID:      strings.TrimSpace(dto.BusinessID),
		Status:          strings.TrimSpace(dto.Status),
		DeliveryAddress: strings.TrimSpace(dto.DeliveryAddress),
		DeliveryLat:     dto.DeliveryLat,
		DeliveryLng:     dto.DeliveryLng,
		TotalAmount:     dto.TotalAmount,
		CreatedAt:       dto.CreatedAt,
	}
}
