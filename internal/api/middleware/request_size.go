package middleware

import "net/http"

// MaxBodySize bounds create-event bodies; the records are tiny so 1MB is
// generous.
const MaxBodySize int64 = 1 << 20

// RequestSize caps request body reads at maxBytes via http.MaxBytesReader.
func RequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
