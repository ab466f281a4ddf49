// Package modkit builds API modules from shared dependencies and per module options
package modkit

import (
	"todos/internal/modkit/repokit"
	"todos/internal/platform/config"
	"todos/internal/platform/logger"
	"todos/internal/platform/store"
)

// Deps is built once by the composition root and handed to every module
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	// PG is nil when no database is configured
	PG repokit.TxRunner
	// Store owns the pool behind PG; the meta module pings it for readiness
	Store *store.Store
}

// HasPG reports whether a Postgres runner is wired
func (d Deps) HasPG() bool { return d.PG != nil }
