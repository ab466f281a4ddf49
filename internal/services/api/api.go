// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"todos/internal/platform/config"
	perr "todos/internal/platform/errors"
	"todos/internal/platform/logger"
	phttp "todos/internal/platform/net/http"
	"todos/internal/platform/net/middleware"
	"todos/internal/platform/store"

	"todos/internal/modkit"
	"todos/internal/modkit/httpkit"
	"todos/internal/modkit/module"
	"todos/internal/modkit/swaggerkit"

	metamod "todos/internal/services/api/meta/module"
	todosmod "todos/internal/services/api/todos/module"

	"go.opentelemetry.io/otel/metric"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         logger.Logger
	Meter          metric.MeterProvider
	EnableSwagger  bool
	EnableProfiler bool

	// Modules replaces the default module set; tests use it to inject fakes
	Modules []module.Module
}

// Deps builds the shared module dependencies from the options
func (o Options) Deps() modkit.Deps {
	d := modkit.Deps{Log: o.Logger, Cfg: o.Config, Store: o.Store}
	if o.Store != nil {
		d.PG = o.Store.PG
	}
	return d
}

// DefaultModules returns the modules the API serves
func DefaultModules(deps modkit.Deps) []module.Module {
	return []module.Module{
		metamod.New(deps),
		todosmod.New(deps),
	}
}

// Mount mounts the API service onto the given router.
// The common stack is installed on the root so heartbeat and not found answers share it.
// Unmatched routes answer with the same 404 wire body as a missing todo
func Mount(r phttp.Router, opt Options) {
	r.Use(middleware.Stack(middleware.StackOptions{
		SlowRequest: opt.Config.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Meter:       opt.Meter,
		CORS: middleware.CORSOptions{
			AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
		},
		Heartbeat: "/health",
	})...)

	r.NotFound(httpkit.Handle(func(*http.Request) httpkit.Response {
		return httpkit.Error(perr.ErrNotFound)
	}))

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.TitleSuffix(opt.Config.MayString("DOCS_TITLE_SUFFIX", "")))
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	mods := opt.Modules
	if mods == nil {
		mods = DefaultModules(opt.Deps())
	}
	module.MountAll(r, mods...)
}
