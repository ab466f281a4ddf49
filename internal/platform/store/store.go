// Package store owns the Postgres pool and the narrow query surface
// repositories are written against
package store

import (
	"context"
	"errors"
	"fmt"

	"todos/internal/platform/logger"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; callers must Close it
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs one parameterized statement at a time
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn inside a transaction.
// fn's error rolls the transaction back; nil commits
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// PoolStats is a point in time view of the connection pool
type PoolStats struct {
	Total    int32 `json:"total"`
	Idle     int32 `json:"idle"`
	Acquired int32 `json:"acquired"`
	Max      int32 `json:"max"`
}

// Store holds the shared runner. The zero value has no database
type Store struct {
	Log logger.Logger
	// PG is nil when postgres is disabled
	PG TxRunner
}

// Option adjusts a Store during Open
type Option func(*Store)

// WithLogger routes store and SQL trace logs to log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log }
}

// WithPG installs a ready runner instead of opening a pool
func WithPG(q TxRunner) Option {
	return func(s *Store) { s.PG = q }
}

// Open builds the Store and, when cfg.PG.Enabled and no runner was supplied,
// connects the pool and waits for it to answer
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: *logger.Named("store")}
	for _, o := range opts {
		o(s)
	}
	if s.PG != nil || !cfg.PG.Enabled {
		return s, nil
	}
	pg, err := openPG(ctx, cfg, s)
	if err != nil {
		return nil, err
	}
	s.PG = pg
	return s, nil
}

// Guard pings the runner when it can answer pings
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	p, ok := s.PG.(interface{ Ping(context.Context) error })
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("pg: %w", err)
	}
	return nil
}

// Stats reports pool statistics; ok is false when there is no pool behind PG
func (s *Store) Stats() (PoolStats, bool) {
	if s == nil {
		return PoolStats{}, false
	}
	r, ok := s.PG.(interface{ Stats() PoolStats })
	if !ok {
		return PoolStats{}, false
	}
	return r.Stats(), true
}

// Close releases the pool; safe on nil
func (s *Store) Close(context.Context) error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
