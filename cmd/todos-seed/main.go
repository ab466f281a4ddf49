// Command todos-seed inserts fixture todos through the todos service
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"todos/internal/modkit"
	"todos/internal/modkit/module"
	"todos/internal/platform/config"
	"todos/internal/platform/logger"
	"todos/internal/platform/store"
	"todos/internal/services/api/todos/domain"
	todosmod "todos/internal/services/api/todos/module"
	"todos/internal/services/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run returns the process exit code so every path closes the store first
func run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("todos-seed", flag.ContinueOnError)
	file := fs.String("file", "", "TOML file with [[todo]] entries")
	mock := fs.Int("mock", 0, "also insert N mock-title-N / mock-content-N todos")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	root := config.New()
	l := logger.Named("todos-seed")

	var entries []seed.Entry
	if *file != "" {
		f, err := seed.Load(*file)
		if err != nil {
			l.Error().Err(err).Msg("load fixtures")
			return 1
		}
		entries = append(entries, f.Todos...)
	}
	entries = append(entries, seed.Mock(*mock)...)
	if len(entries) == 0 {
		l.Warn().Msg("nothing to seed; pass -file or -mock")
		return 0
	}

	st, err := store.Open(ctx, store.FromEnv(root), store.WithLogger(*l))
	if err != nil {
		l.Error().Err(err).Msg("store.Open failed")
		return 1
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Warn().Err(err).Msg("close store")
		}
	}()
	if st.PG == nil {
		l.Error().Msg("postgres is disabled; nothing can be seeded")
		return 1
	}
	if err := st.Guard(ctx); err != nil {
		l.Error().Err(err).Msg("database unreachable")
		return 1
	}
	if err := todosmod.EnsureSchema(ctx, st.PG); err != nil {
		l.Error().Err(err).Msg("ensure schema failed")
		return 1
	}

	m := todosmod.New(modkit.Deps{Log: *l, Cfg: root, PG: st.PG, Store: st})
	todos, err := seed.Run(ctx, module.MustPortsOf[domain.ImportPort](m), entries)
	if err != nil {
		l.Error().Err(err).Msg("seed failed; nothing was written")
		return 1
	}
	l.Info().Int("created", len(todos)).Msg("seed complete")
	return 0
}
