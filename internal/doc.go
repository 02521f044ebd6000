// Package internal documents the eventlog server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, error rendering, and routing
// - domain: event validation, write, and read logic
// - storage: database access and repositories (pgx + Postgres)
// - auth, config, metrics, telemetry: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
