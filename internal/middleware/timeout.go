package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Timeout puts a deadline on the request context. Handlers are expected to
// honour it; if one returns after the deadline without writing anything, the
// client gets a timeout error.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			wrapped := wrapWriter(w)
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			if !wrapped.written && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				render.Status(r, http.StatusGatewayTimeout)
				render.JSON(wrapped, r, map[string]any{
					"error":   ErrorCodeRequestTimeout,
					"message": ErrorMessageRequestTimeout,
				})
			}
		})
	}
}
