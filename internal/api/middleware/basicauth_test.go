package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jarvis-home/eventlog/internal/config"
	"github.com/stretchr/testify/require"
)

func gateConfig() config.Config {
	return config.Config{
		Auth:       config.AuthConfig{Username: "edith", Password: "s3cret"},
		Deployment: config.DeploymentConfig{Region: "local", Account: "0", API: "eventlog", Stage: "prod"},
	}
}

func TestBasicAuthDeniesWithoutHeader(t *testing.T) {
	handler := BasicAuth(gateConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	require.Contains(t, res.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBasicAuthDeniesWrongCredentials(t *testing.T) {
	handler := BasicAuth(gateConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.SetBasicAuth("edith", "wrong")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestBasicAuthAttachesGrant(t *testing.T) {
	var sawGrant bool
	handler := BasicAuth(gateConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := GrantFrom(r)
		require.True(t, ok)
		require.Equal(t, "edith", grant.PrincipalID)
		require.Equal(t, "local:0:eventlog/prod/*/*", grant.Resource)
		sawGrant = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("edith:s3cret")))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.True(t, sawGrant)
}
