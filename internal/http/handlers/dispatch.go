package handlers

import (
	"context"
	"errors"
	"net/http"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/auth"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// DispatchHandler handles HTTP requests for order assignment and fulfillment.
type DispatchHandler struct {
	usecase dispatchUsecase
	logger  logx.Logger
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(logger logx.Logger, uc dispatchUsecase) *DispatchHandler {
	return &DispatchHandler{usecase: uc, logger: logger}
}

// ListAvailable handles GET /orders/available.
// @Summary List claimable orders near the courier
// @Produce json
// @Param lat query number true "Courier latitude"
// @Param lng query number true "Courier longitude"
// @Param radius_m query number false "Search radius in meters"
// @Success 200 {array} availableOrderDTO
// @Failure 422 {object} errResponse "invalid location"
// @Router /orders/available [get]
func (h *DispatchHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	lat, okLat := floatQuery(r, "lat")
	lng, okLng := floatQuery(r, "lng")
	if !okLat || !okLng {
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "lat and lng query parameters are required")
		return
	}
	radius, _ := floatQuery(r, "radius_m")

	list, err := h.usecase.ListAvailable(r.Context(), domain.GeoPoint{Lat: lat, Lng: lng}, radius)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, availableListToDTO(list))
}

// Accept handles POST /orders/{order_id}/accept.
// @Summary Claim an order for the calling courier
// @Produce json
// @Success 200 {object} acceptResponse
// @Failure 404 {object} errResponse "order not found"
// @Failure 409 {object} errResponse "order already assigned"
// @Router /orders/{order_id}/accept [post]
func (h *DispatchHandler) Accept(w http.ResponseWriter, r *http.Request) {
	p, orderID, ok := h.callerAndOrder(w, r)
	if !ok {
		return
	}

	res, err := h.usecase.Accept(r.Context(), orderID, p.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, acceptedToResponse(res))
}

// Pickup handles POST /orders/{order_id}/pickup.
func (h *DispatchHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.usecase.Pickup, "order picked up")
}

// StartDelivery handles POST /orders/{order_id}/start_delivery.
func (h *DispatchHandler) StartDelivery(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.usecase.StartDelivery, "delivery started")
}

// Deliver handles POST /orders/{order_id}/deliver.
// @Summary Complete the delivery and settle earnings
// @Produce json
// @Success 200 {object} deliverResponse
// @Failure 404 {object} errResponse "order not found"
// @Failure 409 {object} errResponse "order not in delivering state"
// @Router /orders/{order_id}/deliver [post]
func (h *DispatchHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	p, orderID, ok := h.callerAndOrder(w, r)
	if !ok {
		return
	}

	res, err := h.usecase.Deliver(r.Context(), orderID, p.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, settlementToResponse(res))
}

// Earnings handles GET /couriers/me/earnings.
func (h *DispatchHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.usecase.Earnings(r.Context(), p.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, earningsToDTO(list))
}

type transitionFunc func(ctx context.Context, orderID, courierID string) (domain.Order, error)

func (h *DispatchHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc, message string) {
	p, orderID, ok := h.callerAndOrder(w, r)
	if !ok {
		return
	}

	o, err := fn(r.Context(), orderID, p.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, transitionToResponse(o, message))
}

func (h *DispatchHandler) callerAndOrder(w http.ResponseWriter, r *http.Request) (auth.Principal, string, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "unauthorized")
		return auth.Principal{}, "", false
	}
	orderID, ok := idFromURL(r, "order_id")
	if !ok {
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "invalid order id")
		return auth.Principal{}, "", false
	}
	return p, orderID, true
}

// writeDomainError maps apperr sentinels to HTTP statuses. Wrapped domain
// errors carry caller-facing messages (current owner, actual vs expected
// status), so err.Error() is the response body.
func (h *DispatchHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		writeError(h.logger, w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
