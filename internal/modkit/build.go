package modkit

import (
	"net/http"

	"todos/internal/modkit/httpkit"
	"todos/internal/modkit/module"
	str "todos/internal/platform/strings"
)

// Module is the surface every API module exposes to the composition root
type Module = module.Module

// Built is a module's resolved wiring: where it mounts, what runs in front of
// its routes and which ports replace its defaults
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	register []func(httpkit.Router)
}

// Option overrides part of a module's wiring
type Option func(*Built)

// WithPrefix moves the module to another mount path
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends per module middleware; it runs in the order given
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts injects a port set, typically a test double for the module's service
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithRegister adds endpoints next to the module's own routes.
// Hooks run after the module's routes, in the order given
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.register = append(b.register, fn) }
}

// Build resolves a module's wiring from its defaults and caller options.
// An empty name or a prefix that normalizes to root panics
func Build(name, prefix string, opts ...Option) Built {
	b := Built{Name: name, Prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	b.Name = str.MustString(b.Name, "module name")
	b.Prefix = str.MustPrefix(b.Prefix)
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// Mount routes own and then every register hook under the prefix, behind the
// module middlewares
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	r.Route(b.Prefix, func(sub httpkit.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		if own != nil {
			own(sub)
		}
		for _, fn := range b.register {
			fn(sub)
		}
	})
}
