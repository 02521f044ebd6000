package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDGeneratesWhenAbsent(t *testing.T) {
	var seen string
	handler := CorrelationID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.NotEmpty(t, seen)
	require.Equal(t, seen, res.Header().Get("X-Request-ID"))
}

func TestCorrelationIDHonorsUpstreamHeader(t *testing.T) {
	var seen string
	handler := CorrelationID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("X-Request-ID", "proxy-assigned")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, "proxy-assigned", seen)
	require.Equal(t, "proxy-assigned", res.Header().Get("X-Request-ID"))
}
