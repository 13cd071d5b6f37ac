// File: internal/middleware/recovery.go
package middleware

import (
	"net/http"

	"foodmate-server/internal/services"
)

// RecoverPanic converts handler panics into a generic 500.
func RecoverPanic(logger services.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
					w.Header().Set("Connection", "close")
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"Something went wrong on our end."}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
