// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"foodmate-server/internal/domain"
	"foodmate-server/internal/repository/user"
	"foodmate-server/internal/services/user_services"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	userKey   contextKey = "user"
)

// NewJWTMiddleware builds the auth gate: it verifies the bearer token from
// the Authorization header, loads the referenced user and attaches both the
// user and its id to the request context.
func NewJWTMiddleware(authService *user_services.AuthService, userRepo user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				unauthorized(w, "Invalid authorization header format")
				return
			}

			userID, err := authService.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			// The token may outlive the account.
			u, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				unauthorized(w, "User no longer exists")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}

// UserIDFrom extracts the authenticated user's id from the request context.
func UserIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}

// UserFrom extracts the authenticated user from the request context.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	return u, ok
}
