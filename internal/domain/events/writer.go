package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is ISO-8601 with millisecond precision. UTC instants
// render with a trailing Z, so lexicographic order equals chronological
// order within a partition.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CreateRequest is the typed shape of a create-event body. Fields are
// validated by WriteService.Create; the timestamp is never client-supplied.
type CreateRequest struct {
	MajorThing string `json:"majorThing"`
	MinorThing string `json:"minorThing"`
	Event      string `json:"event"`
}

// ParseCreateRequest decodes an untrusted request body. An empty or
// unparseable body yields ErrMalformedBody and field validation is not
// attempted.
func ParseCreateRequest(body []byte) (CreateRequest, error) {
	if len(body) == 0 {
		return CreateRequest{}, ErrMalformedBody
	}
	var req CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return CreateRequest{}, ErrMalformedBody
	}
	return req, nil
}

type WriteService struct {
	repo Repository
	now  func() time.Time
}

func NewWriteService(repo Repository) *WriteService {
	return &WriteService{repo: repo, now: time.Now}
}

// Create validates all three fields (errors accumulate in field order, every
// field is always checked), stamps the record with the current UTC instant,
// and submits it to the store. A store failure is returned wrapped; the
// write is not retried.
func (s *WriteService) Create(ctx context.Context, req CreateRequest) (Record, error) {
	var errs ValidationErrors
	fields := []struct {
		name  string
		value string
	}{
		{"majorThing", req.MajorThing},
		{"minorThing", req.MinorThing},
		{"event", req.Event},
	}
	for _, field := range fields {
		if ok, msg := ValidateField(field.name, true, field.value); !ok {
			errs = append(errs, msg)
		}
	}
	if len(errs) > 0 {
		return Record{}, errs
	}

	record := Record{
		DateTime:   s.now().UTC().Format(TimestampLayout),
		MajorThing: req.MajorThing,
		MinorThing: req.MinorThing,
		Event:      req.Event,
	}
	if err := s.repo.Put(ctx, record); err != nil {
		return Record{}, fmt.Errorf("put event: %w", err)
	}
	return record, nil
}
