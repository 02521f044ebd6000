package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jarvis-home/eventlog/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRateLimitAllowsBurstThenBlocks(t *testing.T) {
	cfg := config.RateLimitConfig{PerMinute: 60, Burst: 3}
	handler := RateLimit(cfg)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		req.RemoteAddr = "198.51.100.7:4242"
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code, "request %d", i+1)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	require.Equal(t, http.StatusTooManyRequests, res.Code)
	require.Equal(t, "60", res.Header().Get("Retry-After"))
}

func TestRateLimitIsPerClient(t *testing.T) {
	cfg := config.RateLimitConfig{PerMinute: 60, Burst: 1}
	handler := RateLimit(cfg)(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	first.RemoteAddr = "198.51.100.8:1000"
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, first)
	require.Equal(t, http.StatusOK, res.Code)

	other := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	other.RemoteAddr = "198.51.100.9:1000"
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, other)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestRateLimitExemptsHealthEndpoints(t *testing.T) {
	cfg := config.RateLimitConfig{PerMinute: 60, Burst: 1}
	handler := RateLimit(cfg)(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "198.51.100.10:1000"
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	}
}

func TestRateLimitDisabledWhenZero(t *testing.T) {
	handler := RateLimit(config.RateLimitConfig{})(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		req.RemoteAddr = "198.51.100.11:1000"
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	}
}
