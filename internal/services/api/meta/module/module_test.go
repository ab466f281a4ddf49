package module

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	modkit "todos/internal/modkit"
	"todos/internal/modkit/module"
	"todos/internal/platform/config"
	phttp "todos/internal/platform/net/http"
	"todos/internal/platform/store"

	"github.com/go-chi/chi/v5"
)

func TestNew_Defaults(t *testing.T) {
	m := New(modkit.Deps{})
	if m.Name() != "meta" || m.Ports() != nil {
		t.Fatalf("name %q ports %v", m.Name(), m.Ports())
	}
	if p, ok := m.(module.Prefixed); !ok || p.Prefix() != "/meta" {
		t.Fatalf("prefix missing or wrong")
	}
}

// runner answers Guard without a Ping method, so the check passes with no pool stats
type runner struct{ store.TxRunner }

func TestMountRoutes_ServiceNameFromConfig(t *testing.T) {
	t.Setenv("META_T_SERVICE_NAME", "todos-api-test")

	mux := chi.NewRouter()
	New(modkit.Deps{Cfg: config.New().Prefix("META_T_"), Store: &store.Store{PG: runner{}}}).MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"service":"todos-api-test"`) {
		t.Fatalf("health: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `{"name":"pg","status":"ok"}`) {
		t.Fatalf("ready: %d %s", rec.Code, rec.Body.String())
	}
}

func TestReady_StoreWithoutPGIsSkipped(t *testing.T) {
	t.Parallel()

	for name, st := range map[string]*store.Store{"nil store": nil, "pg disabled": {}} {
		mux := chi.NewRouter()
		New(modkit.Deps{Store: st}).MountRoutes(phttp.AdaptChi(mux))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
		if rec.Code != 200 || !strings.Contains(rec.Body.String(), `{"name":"pg","status":"skipped"}`) {
			t.Fatalf("%s: ready = %d %s", name, rec.Code, rec.Body.String())
		}
	}
}
