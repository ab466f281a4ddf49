package pg

import (
	"context"
	"strings"

	"todos/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one statement round trip
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements on a child of root pinned to debug, so SQL logging
// switched on by config is printed whatever the process log level is
func Tracer(root logger.Logger) QueryTracer {
	return logTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type logTracer struct{ log logger.Logger }

// OnQuery logs failures at error, slow statements at warn and the rest at info
func (t logTracer) OnQuery(_ context.Context, ev QueryEvent) {
	lvl := zerolog.InfoLevel
	switch {
	case ev.Err != nil:
		lvl = zerolog.ErrorLevel
	case ev.Slow:
		lvl = zerolog.WarnLevel
	}
	t.log.WithLevel(lvl).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow).
		Str("sql", oneLine(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// oneLine collapses whitespace runs so multi line statements log on one line
func oneLine(sql string) string { return strings.Join(strings.Fields(sql), " ") }
