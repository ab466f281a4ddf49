// Package pg opens the pgx pool and describes the statement tracing hook
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL             string
	MaxConns        int32
	ApplicationName string
	// Slow is the latency at which a statement counts as slow; negative never marks
	Slow time.Duration
}

// PG is the open pool with its tracing settings
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	Slow   time.Duration
}

// Option adjusts Open
type Option func(*options)

type options struct {
	tracer QueryTracer
	mutate []func(*pgxpool.Config)
}

// WithTracer reports every statement to t
func WithTracer(t QueryTracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithPoolConfig edits the parsed pool config before the pool is created
func WithPoolConfig(fn func(*pgxpool.Config)) Option {
	return func(o *options) { o.mutate = append(o.mutate, fn) }
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and creates the pool. pgxpool connects lazily,
// so a reachable server is not required until the first statement
func Open(ctx context.Context, cfg Config, opts ...Option) (*PG, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.ApplicationName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName
	}
	for _, fn := range o.mutate {
		fn(pcfg)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: o.tracer, Slow: cfg.Slow}, nil
}

// Stat returns pool statistics, nil when the pool is not open
func (p *PG) Stat() *pgxpool.Stat {
	if p == nil || p.Pool == nil {
		return nil
	}
	return p.Pool.Stat()
}

// Close closes the pool; safe on nil
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
