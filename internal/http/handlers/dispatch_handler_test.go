package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/auth"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

type stubDispatchUsecase struct {
	listFn     func(ctx context.Context, location domain.GeoPoint, radiusM float64) ([]domain.AvailableOrder, error)
	acceptFn   func(ctx context.Context, orderID, courierID string) (domain.AcceptedOrder, error)
	pickupFn   func(ctx context.Context, orderID, courierID string) (domain.Order, error)
	startFn    func(ctx context.Context, orderID, courierID string) (domain.Order, error)
	deliverFn  func(ctx context.Context, orderID, courierID string) (domain.Settlement, error)
	earningsFn func(ctx context.Context, courierID string) ([]domain.EarningsRecord, error)
}

func (s *stubDispatchUsecase) ListAvailable(ctx context.Context, location domain.GeoPoint, radiusM float64) ([]domain.AvailableOrder, error) {
	if s.listFn == nil {
		panic("ListAvailable not expected in this test")
	}
	return s.listFn(ctx, location, radiusM)
}

func (s *stubDispatchUsecase) Accept(ctx context.Context, orderID, courierID string) (domain.AcceptedOrder, error) {
	if s.acceptFn == nil {
		panic("Accept not expected in this test")
	}
	return s.acceptFn(ctx, orderID, courierID)
}

func (s *stubDispatchUsecase) Pickup(ctx context.Context, orderID, courierID string) (domain.Order, error) {
	if s.pickupFn == nil {
		panic("Pickup not expected in this test")
	}
	return s.pickupFn(ctx, orderID, courierID)
}

func (s *stubDispatchUsecase) StartDelivery(ctx context.Context, orderID, courierID string) (domain.Order, error) {
	if s.startFn == nil {
		panic("StartDelivery not expected in this test")
	}
	return s.startFn(ctx, orderID, courierID)
}

func (s *stubDispatchUsecase) Deliver(ctx context.Context, orderID, courierID string) (domain.Settlement, error) {
	if s.deliverFn == nil {
		panic("Deliver not expected in this test")
	}
	return s.deliverFn(ctx, orderID, courierID)
}

func (s *stubDispatchUsecase) Earnings(ctx context.Context, courierID string) ([]domain.EarningsRecord, error) {
	if s.earningsFn == nil {
		panic("Earnings not expected in this test")
	}
	return s.earningsFn(ctx, courierID)
}

func dispatchRouter(uc dispatchUsecase) http.Handler {
	h := NewDispatchHandler(logx.Nop(), uc)
	r := chi.NewRouter()
	r.Get("/orders/available", h.ListAvailable)
	r.Post("/orders/{order_id}/accept", h.Accept)
	r.Post("/orders/{order_id}/pickup", h.Pickup)
	r.Post("/orders/{order_id}/start_delivery", h.StartDelivery)
	r.Post("/orders/{order_id}/deliver", h.Deliver)
	r.Get("/couriers/me/earnings", h.Earnings)
	return r
}

func asCourier(r *http.Request, id string) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), auth.Principal{ID: id, Role: auth.RoleCourier}))
}

var handlerNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDispatchHandler_ListAvailable_OK(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		listFn: func(_ context.Context, location domain.GeoPoint, radiusM float64) ([]domain.AvailableOrder, error) {
			require.Equal(t, domain.GeoPoint{Lat: 41.0, Lng: 29.0}, location)
			require.Equal(t, float64(2000), radiusM)
			return []domain.AvailableOrder{{
				OrderID:          "o-1",
				BusinessID:       "b-1",
				BusinessName:     "Bakery",
				BusinessAddress:  "Main st 5",
				BusinessLocation: domain.GeoPoint{Lat: 41.001, Lng: 29.001},
				DistanceM:        140.5,
				PickupEstimate:   5 * time.Minute,
				TotalAmount:      decimal.NewFromInt(150),
				DeliveryAddress:  domain.DeliveryAddress{Text: "Some street 1"},
				CreatedAt:        handlerNow,
			}}, nil
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodGet, "/orders/available?lat=41.0&lng=29.0&radius_m=2000", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{
        "order_id": "o-1",
        "business_id": "b-1",
        "business_name": "Bakery",
        "business_address": "Main st 5",
        "business_location": {"lat": 41.001, "lng": 29.001},
        "distance_m": 140.5,
        "pickup_estimate_s": 300,
        "total_amount": "150",
        "delivery_address": "Some street 1",
        "created_at": "2025-06-01T12:00:00Z"
    }]`, rr.Body.String())
}

func TestDispatchHandler_ListAvailable_MissingCoords(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{}
	req := asCourier(httptest.NewRequest(http.MethodGet, "/orders/available?lat=41.0", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestDispatchHandler_ListAvailable_InvalidLocation(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		listFn: func(context.Context, domain.GeoPoint, float64) ([]domain.AvailableOrder, error) {
			return nil, apperr.ErrInvalid
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodGet, "/orders/available?lat=91.0&lng=29.0", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestDispatchHandler_Accept_OK(t *testing.T) {
	t.Parallel()

	courierID := "c-1"
	accepted := handlerNow

	uc := &stubDispatchUsecase{
		acceptFn: func(_ context.Context, orderID, courier string) (domain.AcceptedOrder, error) {
			require.Equal(t, "o-1", orderID)
			require.Equal(t, "c-1", courier)
			return domain.AcceptedOrder{
				Order: domain.Order{
					ID:              "o-1",
					BusinessID:      "b-1",
					CourierID:       &courierID,
					Status:          domain.StatusCourierAssigned,
					DeliveryAddress: domain.DeliveryAddress{Text: "Some street 1"},
					TotalAmount:     decimal.NewFromInt(150),
					AcceptedAt:      &accepted,
				},
				PickupAddress:  "Main st 5",
				PickupLocation: domain.GeoPoint{Lat: 41.001, Lng: 29.001},
			}, nil
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-1/accept", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "order_id": "o-1",
        "business_id": "b-1",
        "courier_id": "c-1",
        "status": "courier_assigned",
        "accepted_at": "2025-06-01T12:00:00Z",
        "pickup_address": "Main st 5",
        "pickup_location": {"lat": 41.001, "lng": 29.001},
        "delivery_address": "Some street 1",
        "total_amount": "150"
    }`, rr.Body.String())
}

func TestDispatchHandler_Accept_Conflict(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		acceptFn: func(context.Context, string, string) (domain.AcceptedOrder, error) {
			return domain.AcceptedOrder{}, apperr.Conflictf("order o-1 already assigned to courier c-9")
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-1/accept", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error": "order o-1 already assigned to courier c-9"}`, rr.Body.String())
}

func TestDispatchHandler_Accept_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		acceptFn: func(context.Context, string, string) (domain.AcceptedOrder, error) {
			return domain.AcceptedOrder{}, apperr.NotFoundf("order o-404 not found")
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-404/accept", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDispatchHandler_Accept_Unauthenticated(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{}
	req := httptest.NewRequest(http.MethodPost, "/orders/o-1/accept", nil)
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDispatchHandler_Pickup_OK(t *testing.T) {
	t.Parallel()

	courierID := "c-1"
	pickedUp := handlerNow

	uc := &stubDispatchUsecase{
		pickupFn: func(_ context.Context, orderID, courier string) (domain.Order, error) {
			require.Equal(t, "o-1", orderID)
			require.Equal(t, "c-1", courier)
			return domain.Order{
				ID:         "o-1",
				BusinessID: "b-1",
				CourierID:  &courierID,
				Status:     domain.StatusPickedUp,
				PickedUpAt: &pickedUp,
			}, nil
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-1/pickup", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "order_id": "o-1",
        "business_id": "b-1",
        "courier_id": "c-1",
        "status": "picked_up",
        "picked_up_at": "2025-06-01T12:00:00Z",
        "message": "order picked up"
    }`, rr.Body.String())
}

func TestDispatchHandler_Pickup_Forbidden(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		pickupFn: func(context.Context, string, string) (domain.Order, error) {
			return domain.Order{}, apperr.Forbiddenf("order o-1 is not assigned to you")
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-1/pickup", nil), "c-2")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error": "order o-1 is not assigned to you"}`, rr.Body.String())
}

func TestDispatchHandler_StartDelivery_OK(t *testing.T) {
	t.Parallel()

	courierID := "c-1"
	started := handlerNow

	uc := &stubDispatchUsecase{
		startFn: func(_ context.Context, orderID, courier string) (domain.Order, error) {
			require.Equal(t, "o-1", orderID)
			return domain.Order{
				ID:                "o-1",
				BusinessID:        "b-1",
				CourierID:         &courierID,
				Status:            domain.StatusDelivering,
				DeliveryStartedAt: &started,
			}, nil
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-1/start_delivery", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "order_id": "o-1",
        "business_id": "b-1",
        "courier_id": "c-1",
        "status": "delivering",
        "delivery_started_at": "2025-06-01T12:00:00Z",
        "message": "delivery started"
    }`, rr.Body.String())
}

func TestDispatchHandler_Deliver_OK(t *testing.T) {
	t.Parallel()

	courierID := "c-1"

	uc := &stubDispatchUsecase{
		deliverFn: func(_ context.Context, orderID, courier string) (domain.Settlement, error) {
			return domain.Settlement{
				Order: domain.Order{
					ID:         "o-1",
					BusinessID: "b-1",
					CourierID:  &courierID,
					Status:     domain.StatusDelivered,
				},
				EarningsID: "earn-1",
				Earning:    decimal.NewFromInt(20),
			}, nil
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-1/deliver", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "order_id": "o-1",
        "business_id": "b-1",
        "courier_id": "c-1",
        "status": "delivered",
        "earnings_id": "earn-1",
        "courier_earning": "20",
        "message": "order delivered"
    }`, rr.Body.String())
}

func TestDispatchHandler_Deliver_InternalError(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		deliverFn: func(context.Context, string, string) (domain.Settlement, error) {
			return domain.Settlement{}, errors.New("pool closed")
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodPost, "/orders/o-1/deliver", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "internal error"}`, rr.Body.String())
}

func TestDispatchHandler_Earnings_OK(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		earningsFn: func(_ context.Context, courierID string) ([]domain.EarningsRecord, error) {
			require.Equal(t, "c-1", courierID)
			return []domain.EarningsRecord{{
				ID:         "earn-1",
				CourierID:  "c-1",
				OrderID:    "o-1",
				BusinessID: "b-1",
				Amount:     decimal.NewFromInt(20),
				OrderTotal: decimal.NewFromInt(150),
				CreatedAt:  handlerNow,
			}}, nil
		},
	}

	req := asCourier(httptest.NewRequest(http.MethodGet, "/couriers/me/earnings", nil), "c-1")
	rr := httptest.NewRecorder()
	dispatchRouter(uc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{
        "id": "earn-1",
        "order_id": "o-1",
        "business_id": "b-1",
        "amount": "20",
        "order_total": "150",
        "created_at": "2025-06-01T12:00:00Z"
    }]`, rr.Body.String())
}
