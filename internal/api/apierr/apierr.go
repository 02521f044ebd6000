// Package apierr renders the API's error wire shape: an ordered list of
// {"message": ...} entries under an "errors" key.
package apierr

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type Message struct {
	Message string `json:"message"`
}

type errorBody struct {
	Errors []Message `json:"errors"`
}

// Write renders messages in the order given and logs them via the
// request-scoped logger: 4xx at warn, 5xx at error.
func Write(w http.ResponseWriter, r *http.Request, status int, messages ...string) {
	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= 500 {
		event = logger.Error()
	}
	event.
		Int("status", status).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Strs("errors", messages).
		Msg("request failed")

	entries := make([]Message, 0, len(messages))
	for _, message := range messages {
		entries = append(entries, Message{Message: message})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Errors: entries})
}
