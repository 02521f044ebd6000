package postgres

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/jarvis-home/eventlog/internal/domain/events"
	"github.com/jarvis-home/eventlog/internal/metrics"
	"github.com/oklog/ulid/v2"
)

var _ events.Repository = (*EventRepository)(nil)

// Put upserts one record. (major_thing, date_time) is the primary key;
// a sort-key collision overwrites the previous payload rather than
// accumulating duplicates.
func (r *EventRepository) Put(ctx context.Context, record events.Record) error {
	id, err := newULID()
	if err != nil {
		return fmt.Errorf("mint event id: %w", err)
	}

	query := fmt.Sprintf(`
INSERT INTO %s (ulid, major_thing, date_time, minor_thing, event)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (major_thing, date_time)
DO UPDATE SET minor_thing = EXCLUDED.minor_thing, event = EXCLUDED.event`, r.table)

	start := time.Now()
	_, err = r.pool.Exec(ctx, query,
		id, record.MajorThing, record.DateTime, record.MinorThing, record.Event,
	)
	metrics.RecordQuery("put_event", start, err)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Range returns every record in the partition with date_time >= since,
// newest first. date_time is ISO-8601 UTC text, so the text ordering the
// index provides is chronological.
func (r *EventRepository) Range(ctx context.Context, majorThing, since string) ([]events.Record, error) {
	query := fmt.Sprintf(`
SELECT date_time, major_thing, minor_thing, event
  FROM %s
 WHERE major_thing = $1
   AND date_time >= $2
 ORDER BY date_time DESC`, r.table)

	start := time.Now()
	rows, err := r.pool.Query(ctx, query, majorThing, since)
	metrics.RecordQuery("range_events", start, err)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var records []events.Record
	for rows.Next() {
		var record events.Record
		if err := rows.Scan(&record.DateTime, &record.MajorThing, &record.MinorThing, &record.Event); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return records, nil
}

func newULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
