// Package storage groups data access behind interfaces so handlers and
// services never see a concrete driver.
package storage

import "github.com/jarvis-home/eventlog/internal/domain/events"

type Repository interface {
	Events() events.Repository
}
