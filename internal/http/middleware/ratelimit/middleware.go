package ratelimit

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"courier-dispatch/internal/auth"
	"courier-dispatch/internal/logx"
)

// Middleware throttles requests per courier. Authenticated requests are keyed
// by the principal id so a courier cannot dodge the limit by hopping
// networks; anonymous requests fall back to the client IP.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
}

// New creates a new Middleware.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limitKey(r)

			if !m.limiter.Allow(key) {
				if m.counter != nil {
					m.counter.Inc()
				}
				m.logger.Warn("rate limit exceeded",
					logx.String("key", key),
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
					// the client may have dropped the connection
					m.logger.Debug("rate limit response write failed",
						logx.String("key", key),
						logx.Err(err),
					)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limitKey(r *http.Request) string {
	if p, ok := auth.PrincipalFrom(r.Context()); ok && p.ID != "" {
		return "courier:" + p.ID
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
