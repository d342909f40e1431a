package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/ports"
)

type contextKey string

// UserIDKey carries the authenticated user's id through the request context.
const UserIDKey contextKey = "userID"

// RequireAuth resolves the Authorization bearer token to a user id via the
// auth service and stores it in the request context. Only this middleware
// touches token internals.
func RequireAuth(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				respondError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			userID, err := authService.Verify(tokenString)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
