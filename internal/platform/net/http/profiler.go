package http

import (
	stdhttp "net/http"
	"strings"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves the pprof endpoints under prefix when enabled.
// The prefix is normalized to a leading slash without a trailing one, so
// "debug/" and "/debug" both expose /debug/pprof/
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}

	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	if prefix != "" {
		r.Handle(prefix, h)
	}
	r.Handle(prefix+"/*", h)
}
