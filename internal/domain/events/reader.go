package events

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// MidnightUTC formats the start (00:00:00.000) of now's UTC day, the policy
// lower bound when a read supplies no usable dateTime.
func MidnightUTC(now time.Time) string {
	year, month, day := now.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(TimestampLayout)
}

// ParseReadQuery validates read parameters. An entirely absent parameter set
// is rejected with the single majorThing error. majorThing is required,
// minorThing optional; their errors accumulate in that order. A missing or
// non-ISO-8601 dateTime is silently replaced by the current UTC day's
// midnight, never reported — callers cannot observe the substitution.
func ParseReadQuery(values url.Values, now time.Time) (Query, ValidationErrors) {
	if len(values) == 0 {
		return Query{}, ValidationErrors{"majorThing is required."}
	}

	var errs ValidationErrors
	query := Query{MajorThing: values.Get("majorThing")}
	if ok, msg := ValidateField("majorThing", true, query.MajorThing); !ok {
		errs = append(errs, msg)
	}

	query.Since = values.Get("dateTime")
	if query.Since == "" || !IsISO8601(query.Since) {
		query.Since = MidnightUTC(now)
	}

	query.MinorThing = values.Get("minorThing")
	if ok, msg := ValidateField("minorThing", false, query.MinorThing); !ok {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return Query{}, errs
	}
	return query, nil
}

type ReadService struct {
	repo Repository
}

func NewReadService(repo Repository) *ReadService {
	return &ReadService{repo: repo}
}

// Read executes the range scan and applies the optional fine-key filter.
// The fine key is matched against returned rows, not folded into the range
// condition; store order (newest first) is preserved either way.
func (s *ReadService) Read(ctx context.Context, query Query) ([]Record, error) {
	records, err := s.repo.Range(ctx, query.MajorThing, query.Since)
	if err != nil {
		return nil, fmt.Errorf("range events: %w", err)
	}
	if query.MinorThing == "" {
		return records, nil
	}

	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if record.MinorThing == query.MinorThing {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
