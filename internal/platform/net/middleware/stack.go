// Package middleware assembles the handler chain every request passes through
// before it reaches a module router
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/otel/metric"
)

// DefaultTimeout bounds a request context when StackOptions.Timeout is unset
const DefaultTimeout = 30 * time.Second

// CORSOptions is the part of go-chi/cors the service exposes through config.
// Empty slices fall back to the methods and headers the todo routes use
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

func orDefault(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

// CORS answers preflight requests and stamps the allow headers
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   orDefault(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		AllowedHeaders:   orDefault(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   orDefault(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// StackOptions tunes Stack
type StackOptions struct {
	// SlowRequest logs slower requests at warn; 0 disables
	SlowRequest time.Duration
	// Timeout bounds each request context; 0 means DefaultTimeout
	Timeout time.Duration
	// Meter receives request metrics; nil uses the global otel provider
	Meter metric.MeterProvider
	CORS  CORSOptions
	// Heartbeat answers GET on this path with 200 before routing; "" disables
	Heartbeat string
}

// Stack returns the root middleware chain, outermost first.
// Correlation comes before recovery so a panic response still carries the
// request id, and logging wraps everything after it so 500s from panics are logged
func Stack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	chain := []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		RequestContext,
		AccessLogZerolog(AccessLogOptions{Slow: o.SlowRequest}),
		Metrics(o.Meter),
		RecoverJSON,
		chimw.NoCache,
		CORS(o.CORS),
		chimw.Compress(flate.BestSpeed),
	}
	if o.Heartbeat != "" {
		chain = append(chain, chimw.Heartbeat(o.Heartbeat))
	}
	return append(chain, chimw.StripSlashes, chimw.Timeout(timeout))
}
