// Package module wires todos into the API using modkit
package module

import (
	"context"

	modkit "todos/internal/modkit"
	"todos/internal/modkit/httpkit"
	"todos/internal/modkit/repokit"
	"todos/internal/services/api/todos/domain"
	todoshttp "todos/internal/services/api/todos/http"
	todosrepo "todos/internal/services/api/todos/repo"
	todossvc "todos/internal/services/api/todos/service"
)

// Ports is what other modules and commands may consume from todos
type Ports struct {
	Service domain.ServicePort
	// Importer is nil when the injected service cannot import
	Importer domain.ImportPort
}

// Module implements the todos module
type Module struct {
	built modkit.Built
	svc   domain.ServicePort
}

// New constructs the todos module.
// A domain.ServicePort passed through modkit.WithPorts replaces the postgres backed service.
// Without a database every todos call fails with service.ErrNoDatabase
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("todos", "/todos", opts...)

	var s domain.ServicePort
	switch injected, ok := b.Ports.(domain.ServicePort); {
	case ok:
		s = injected
	case deps.HasPG():
		s = todossvc.New(deps.PG, todosrepo.NewPG())
	default:
		deps.Log.Warn().Msg("postgres disabled; todos routes answer 500")
		s = todossvc.Offline{}
	}
	return &Module{built: b, svc: s}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		todoshttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// Ports returns the module ports
func (m *Module) Ports() any {
	imp, _ := m.svc.(domain.ImportPort)
	return Ports{Service: m.svc, Importer: imp}
}

// EnsureSchema creates the todos table on pg; a nil pg means the database is
// disabled and there is nothing to create
func EnsureSchema(ctx context.Context, pg repokit.TxRunner) error {
	if pg == nil {
		return nil
	}
	return todosrepo.NewPG().Bind(pg).EnsureSchema(ctx)
}
