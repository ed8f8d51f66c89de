// Package api implements the Doctrail REST API using chi.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/starford/doctrail/internal/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware returns middleware that validates a Bearer session token and
// stores the caller's user ID in the request context.
func AuthMiddleware(authSvc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			claims, err := authSvc.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.Subject == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userID extracts the authenticated caller's user ID from the context.
func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
