package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func TestHealthz(t *testing.T) {
	res := httptest.NewRecorder()
	Healthz().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, res.Code)
}

func TestReadyzChecksStore(t *testing.T) {
	res := httptest.NewRecorder()
	Readyz(stubPinger{}).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, res.Code)

	res = httptest.NewRecorder()
	Readyz(stubPinger{err: errors.New("down")}).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, res.Code)
}
