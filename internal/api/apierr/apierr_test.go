package apierr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteShapesErrorList(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	res := httptest.NewRecorder()

	Write(res, req, http.StatusBadRequest, "majorThing is required.", "event must be alphanumeric.")

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "application/json", res.Header().Get("Content-Type"))

	var payload struct {
		Errors []Message `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, []Message{
		{Message: "majorThing is required."},
		{Message: "event must be alphanumeric."},
	}, payload.Errors)
}

func TestWriteEmptyListStaysAnArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()

	Write(res, req, http.StatusInternalServerError)

	require.Equal(t, http.StatusInternalServerError, res.Code)
	require.JSONEq(t, `{"errors":[]}`, res.Body.String())
}
