package handlers

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/dispatch"
)

type dispatchUsecase interface {
	ListAvailable(ctx context.Context, location domain.GeoPoint, radiusM float64) ([]domain.AvailableOrder, error)
	Accept(ctx context.Context, orderID, courierID string) (domain.AcceptedOrder, error)
	Pickup(ctx context.Context, orderID, courierID string) (domain.Order, error)
	StartDelivery(ctx context.Context, orderID, courierID string) (domain.Order, error)
	Deliver(ctx context.Context, orderID, courierID string) (domain.Settlement, error)
	Earnings(ctx context.Context, courierID string) ([]domain.EarningsRecord, error)
}

// NewDispatchUsecase wires a dispatch.Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}
