package handlers

import "courier-dispatch/internal/domain"

func locationToDTO(p domain.GeoPoint) locationDTO {
	return locationDTO{Lat: p.Lat, Lng: p.Lng}
}

func availableToDTO(o domain.AvailableOrder) availableOrderDTO {
	return availableOrderDTO{
		OrderID:          o.OrderID,
		BusinessID:       o.BusinessID,
		BusinessName:     o.BusinessName,
		BusinessAddress:  o.BusinessAddress,
		BusinessLocation: locationToDTO(o.BusinessLocation),
		DistanceM:        o.DistanceM,
		PickupEstimateS:  int64(o.PickupEstimate.Seconds()),
		TotalAmount:      o.TotalAmount,
		DeliveryAddress:  o.DeliveryAddress.Text,
		CreatedAt:        o.CreatedAt,
	}
}

func availableListToDTO(list []domain.AvailableOrder) []availableOrderDTO {
	out := make([]availableOrderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, availableToDTO(o))
	}
	return out
}

func orderToDTO(o domain.Order) orderDTO {
	return orderDTO{
		OrderID:     o.ID,
		BusinessID:  o.BusinessID,
		CourierID:   o.CourierID,
		Status:      string(o.Status),
		AcceptedAt:  o.AcceptedAt,
		PickedUpAt:  o.PickedUpAt,
		StartedAt:   o.DeliveryStartedAt,
		DeliveredAt: o.DeliveredAt,
	}
}

func acceptedToResponse(a domain.AcceptedOrder) acceptResponse {
	return acceptResponse{
		orderDTO:        orderToDTO(a.Order),
		PickupAddress:   a.PickupAddress,
		PickupLocation:  locationToDTO(a.PickupLocation),
		DeliveryAddress: a.Order.DeliveryAddress.Text,
		TotalAmount:     a.Order.TotalAmount,
	}
}

func transitionToResponse(o domain.Order, message string) transitionResponse {
	return transitionResponse{orderDTO: orderToDTO(o), Message: message}
}

func settlementToResponse(s domain.Settlement) deliverResponse {
	return deliverResponse{
		orderDTO:       orderToDTO(s.Order),
		EarningsID:     s.EarningsID,
		CourierEarning: s.Earning,
		Message:        "order delivered",
	}
}

func earningsToDTO(list []domain.EarningsRecord) []earningDTO {
	out := make([]earningDTO, 0, len(list))
	for _, e := range list {
		out = append(out, earningDTO{
			ID:         e.ID,
			OrderID:    e.OrderID,
			BusinessID: e.BusinessID,
			Amount:     e.Amount,
			OrderTotal: e.OrderTotal,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}
