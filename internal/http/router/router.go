package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"courier-dispatch/internal/http/handlers"
	appmw "courier-dispatch/internal/http/middleware"
	"courier-dispatch/internal/http/middleware/ratelimit"
	"courier-dispatch/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// Courier endpoints sit behind the auth gate; the rate limiter keys by the
// authenticated principal, so it runs inside the gated group.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	dispatch *handlers.DispatchHandler,
	parser appmw.TokenParser,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.Observability(logger))
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.NotFound(http.HandlerFunc(base.NotFound))

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireCourier(logger, parser))
		if limiter != nil {
			r.Use(limiter.Handler())
		}

		r.Get("/orders/available", dispatch.ListAvailable)
		r.Post("/orders/{order_id}/accept", dispatch.Accept)
		r.Post("/orders/{order_id}/pickup", dispatch.Pickup)
		r.Post("/orders/{order_id}/start_delivery", dispatch.StartDelivery)
		r.Post("/orders/{order_id}/deliver", dispatch.Deliver)
		r.Get("/couriers/me/earnings", dispatch.Earnings)
	})

	return r
}
