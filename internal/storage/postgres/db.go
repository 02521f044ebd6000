package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jarvis-home/eventlog/internal/domain/events"
)

type Repository struct {
	pool  *pgxpool.Pool
	table string
}

// NewRepository wraps a pool with the logical events table name from
// configuration. The name is sanitized once here so query text can embed it.
func NewRepository(pool *pgxpool.Pool, table string) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	if table == "" {
		table = "events"
	}
	return &Repository{pool: pool, table: pgx.Identifier{table}.Sanitize()}, nil
}

func (r *Repository) Events() events.Repository {
	return &EventRepository{pool: r.pool, table: r.table}
}

type EventRepository struct {
	pool  *pgxpool.Pool
	table string
}
