package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyRejectsMissingOrWrongKey(t *testing.T) {
	handler := APIKey("plan-key")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	require.Equal(t, http.StatusForbidden, res.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("X-Api-Key", "other")
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	require.Equal(t, http.StatusForbidden, res.Code)
}

func TestAPIKeyAcceptsConfiguredKey(t *testing.T) {
	handler := APIKey("plan-key")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("X-Api-Key", "plan-key")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestAPIKeyDisabledWhenUnconfigured(t *testing.T) {
	handler := APIKey("")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
}
