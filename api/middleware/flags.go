// ABOUTME: Feature flag middleware for API endpoints
// ABOUTME: Puts the service's flag manager in every request context for handlers to read

package middleware

import (
	"net/http"

	"scripture-tags/pkg/featureflags"
)

// FeatureFlagsMiddleware makes manager available through featureflags.FromContext
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
