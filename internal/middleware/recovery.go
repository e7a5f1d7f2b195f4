package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into a 500 and logs the stack.
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic recovered",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.ByteString("stack", debug.Stack()),
				)

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]any{
					"error":   ErrorCodeInternal,
					"message": ErrorMessageInternal,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
