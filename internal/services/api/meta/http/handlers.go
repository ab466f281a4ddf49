// Package http serves liveness, readiness and build info under /meta
package http

import (
	"context"
	"net/http"
	"time"

	"todos/internal/core/version"
	"todos/internal/modkit/httpkit"
	"todos/internal/platform/store"
)

// Checker is satisfied by *store.Store
type Checker interface {
	Guard(context.Context) error
	Stats() (store.PoolStats, bool)
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// PG is nil when no database is wired; ready then reports it skipped
	PG           Checker
	ReadyTimeout time.Duration
	Now          func() time.Time
}

// Check states
const (
	StatusOK      = "ok"
	StatusFail    = "fail"
	StatusSkipped = "skipped"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"todos-api"`
	Started string `json:"started" example:"2026-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2026-09-03T13:05:00Z"`
}

// ReadyCheck is the outcome of one dependency probe
type ReadyCheck struct {
	Name   string           `json:"name"            example:"pg"`
	Status string           `json:"status"          example:"ok"`
	Error  string           `json:"error,omitempty" example:"pg: connection refused"`
	Pool   *store.PoolStats `json:"pool,omitempty"`
}

// ReadyResponse is fail when any check failed
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-09-03T13:05:00Z"`
}

// ServiceResponse reports uptime in whole seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"todos-api"`
	Started string `json:"started" example:"2026-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

type meta struct{ Deps }

// Register mounts health, ready, version and service on r
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	m := meta{d}

	httpkit.Get(r, "/health", m.health)
	httpkit.Get(r, "/ready", m.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", m.service)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (m meta) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: m.ServiceName, Started: stamp(m.StartedAt), Now: stamp(m.Now())}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "a dependency failed"
// @Router /meta/ready [get]
func (m meta) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), m.ReadyTimeout)
	defer cancel()

	out := ReadyResponse{Status: StatusOK, Checks: []ReadyCheck{m.checkPG(ctx)}, Now: stamp(m.Now())}
	for _, c := range out.Checks {
		if c.Status == StatusFail {
			out.Status = StatusFail
			return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
		}
	}
	return out, nil
}

func (m meta) checkPG(ctx context.Context) ReadyCheck {
	c := ReadyCheck{Name: "pg", Status: StatusSkipped}
	if m.PG == nil {
		return c
	}
	c.Status = StatusOK
	if err := m.PG.Guard(ctx); err != nil {
		c.Status, c.Error = StatusFail, err.Error()
	}
	if st, ok := m.PG.Stats(); ok {
		c.Pool = &st
	}
	return c
}

// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (m meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    m.ServiceName,
		Started: stamp(m.StartedAt),
		Uptime:  int64(m.Now().Sub(m.StartedAt) / time.Second),
	}, nil
}
