package middleware

import (
	"io"
	"net/http"
	"strings"

	"courier-dispatch/internal/auth"
	"courier-dispatch/internal/logx"
)

// TokenParser validates a bearer token and returns the caller's principal.
type TokenParser interface {
	Parse(tokenStr string) (auth.Principal, error)
}

// RequireCourier authenticates the bearer token and admits only callers with
// the courier role. The principal lands in the request context for handlers.
func RequireCourier(logger logx.Logger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(raw, "Bearer ")
			if !ok || strings.TrimSpace(tokenStr) == "" {
				writeAuthError(logger, w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			p, err := parser.Parse(strings.TrimSpace(tokenStr))
			if err != nil {
				logger.Debug("token rejected", logx.Err(err))
				writeAuthError(logger, w, http.StatusUnauthorized, "invalid token")
				return
			}

			if p.Role != auth.RoleCourier {
				logger.Warn("non-courier call to courier endpoint",
					logx.String("principal_id", p.ID),
					logx.String("role", p.Role),
					logx.String("path", r.URL.Path),
				)
				writeAuthError(logger, w, http.StatusForbidden, "courier role required")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

func writeAuthError(logger logx.Logger, w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, `{"error":"`+msg+`"}`); err != nil {
		logger.Debug("auth response write failed", logx.Err(err))
	}
}
