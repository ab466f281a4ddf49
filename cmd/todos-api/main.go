// @title         Todos API
// @version       0.1.0
// @description   CRUD over todos stored in postgres

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todos/internal/modkit/module"
	"todos/internal/modkit/repokit"
	"todos/internal/platform/config"
	"todos/internal/platform/logger"
	phttp "todos/internal/platform/net/http"
	"todos/internal/platform/store"
	"todos/internal/platform/telemetry"

	"todos/internal/services/api"
	todosmod "todos/internal/services/api/todos/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.FromEnv(root))
	if err != nil {
		l.Panic().Err(err).Msg("telemetry setup failed")
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			l.Warn().Err(err).Msg("meter provider shutdown")
		}
	}()

	// open the platform store; DATABASE_URL or DATABASE_* parts, pool knobs under SERVICE_PGSQL_*
	st, err := store.Open(ctx, store.FromEnv(root), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if apiCfg.MayBool("ENSURE_SCHEMA", true) {
		if err := todosmod.EnsureSchema(ctx, st.PG); err != nil {
			l.Panic().Err(err).Msg("ensure schema failed")
		}
	}

	// http server (reads CORE_API_ADDR or CORE_API_HOST / CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         *l,
			Meter:          mp,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Listen(); err != nil {
		l.Panic().Err(err).Str("addr", srv.Addr()).Msg("listen failed")
	}
	l.Info().Str("addr", srv.Addr()).Strs("modules", module.Names()).Msg("todos api listening")

	// run until SIGINT/SIGTERM, then drain in flight requests
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("todos api stopped")
}
