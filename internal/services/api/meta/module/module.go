// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "todos/internal/modkit"
	"todos/internal/modkit/httpkit"
	metahttp "todos/internal/services/api/meta/http"
)

// DefaultServiceName is reported by health and service when SERVICE_NAME is unset
const DefaultServiceName = "todos-api"

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("meta", "/meta", opts...)

	hd := metahttp.Deps{
		ServiceName:  deps.Cfg.MayString("SERVICE_NAME", DefaultServiceName),
		StartedAt:    time.Now(),
		ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
	}
	// without a runner ready reports pg skipped; a nil *store.Store must stay a nil interface
	if deps.Store != nil && deps.Store.PG != nil {
		hd.PG = deps.Store
	}
	return &Module{built: b, deps: hd}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, m.deps)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.built.Prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
