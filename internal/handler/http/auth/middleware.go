package auth

import (
	"context"
	"net/http"
	"strings"

	"lawgan/internal/handler/http/respond"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// adminIDKey is the context key carrying the authenticated admin ID.
const adminIDKey contextKey = "admin_id"

// AdminIDFromContext retrieves the authenticated admin ID from the context.
// Returns 0 if the request was not authenticated.
func AdminIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(adminIDKey).(int64); ok {
		return id
	}
	return 0
}

// Authz returns middleware that requires a valid bearer token on every
// request it wraps. The admin ID from the token is placed in the request
// context for downstream handlers.
func Authz(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Message(w, http.StatusUnauthorized, "Authorization required.")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				respond.Message(w, http.StatusUnauthorized, "Invalid authorization header.")
				return
			}

			adminID, err := Verify(secret, tokenString)
			if err != nil {
				respond.Message(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
