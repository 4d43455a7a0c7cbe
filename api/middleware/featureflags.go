// ABOUTME: Feature flag middleware for API endpoints
// ABOUTME: Carries the flag manager on each request context for handlers and services

package middleware

import (
	"net/http"

	"feedfilter-api/pkg/featureflags"
)

// FeatureFlagsMiddleware attaches manager to every request context so flags
// are evaluated per request rather than once at startup
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
