package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jarvis-home/eventlog/internal/api/apierr"
	"github.com/jarvis-home/eventlog/internal/domain/events"
	"github.com/jarvis-home/eventlog/internal/metrics"
)

const internalErrorMessage = "internal server error."

type EventsHandler struct {
	Writer *events.WriteService
	Reader *events.ReadService
}

func NewEventsHandler(writer *events.WriteService, reader *events.ReadService) *EventsHandler {
	return &EventsHandler{Writer: writer, Reader: reader}
}

// Create handles POST /api/v1/events. A malformed body yields the single
// generic message; field errors come back together; a store failure is an
// explicit 500, never a silent fallthrough. Success is 200 with an empty
// body.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		apierr.Write(w, r, http.StatusBadRequest, events.ErrMalformedBody.Error())
		return
	}

	req, err := events.ParseCreateRequest(body)
	if err != nil {
		apierr.Write(w, r, http.StatusBadRequest, events.ErrMalformedBody.Error())
		return
	}

	record, err := h.Writer.Create(r.Context(), req)
	if err != nil {
		var fieldErrs events.ValidationErrors
		if errors.As(err, &fieldErrs) {
			metrics.ValidationFailuresTotal.WithLabelValues("create").Inc()
			apierr.Write(w, r, http.StatusBadRequest, fieldErrs...)
			return
		}
		apierr.Write(w, r, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	metrics.EventsWrittenTotal.WithLabelValues(record.MajorThing).Inc()
	w.WriteHeader(http.StatusOK)
}

// List handles GET /api/v1/events. The response is always a JSON array on
// success; no matches is an empty array, not an error.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	query, fieldErrs := events.ParseReadQuery(r.URL.Query(), time.Now())
	if fieldErrs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("read").Inc()
		apierr.Write(w, r, http.StatusBadRequest, fieldErrs...)
		return
	}

	records, err := h.Reader.Read(r.Context(), query)
	if err != nil {
		apierr.Write(w, r, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	if records == nil {
		records = []events.Record{}
	}
	metrics.EventsReadTotal.WithLabelValues(query.MajorThing).Add(float64(len(records)))

	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
