// Package events implements the event log domain: alphanumeric field
// validation, create-request handling with server-assigned timestamps, and
// range reads over a coarse-key partition.
package events

import (
	"context"
	"errors"
	"strings"
)

// Record is one stored event. DateTime is an ISO-8601 UTC string assigned by
// the server at write time; together with MajorThing it identifies the
// record. Records are immutable once written.
type Record struct {
	DateTime   string `json:"dateTime"`
	MajorThing string `json:"majorThing"`
	MinorThing string `json:"minorThing"`
	Event      string `json:"event"`
}

// Query describes a validated read: all records in the MajorThing partition
// with DateTime >= Since (newest first), optionally post-filtered by
// MinorThing equality.
type Query struct {
	MajorThing string
	MinorThing string
	Since      string
}

// Repository is the store capability the domain consumes: a single put and a
// lower-bounded range scan. Both are one-shot calls; failures are terminal
// for the request and never retried here.
type Repository interface {
	Put(ctx context.Context, record Record) error
	Range(ctx context.Context, majorThing, since string) ([]Record, error)
}

// ErrMalformedBody carries the client-facing message for an unparseable
// create body. It short-circuits field validation entirely.
var ErrMalformedBody = errors.New("body must be valid JSON.")

// ValidationErrors is the ordered set of field error messages accumulated
// across one request. All applicable fields are checked before the request
// is rejected.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}
