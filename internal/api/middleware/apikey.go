package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/jarvis-home/eventlog/internal/api/apierr"
)

// APIKey enforces the gateway key on protected endpoints. The check is a
// constant-time compare against the configured value; an empty configured
// key disables the middleware entirely.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Api-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				apierr.Write(w, r, http.StatusForbidden, "forbidden.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
