package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todos/internal/modkit"
	"todos/internal/modkit/module"
	"todos/internal/platform/config"
	phttp "todos/internal/platform/net/http"
	"todos/internal/platform/store"
	"todos/internal/platform/testkit"
	metamod "todos/internal/services/api/meta/module"
	"todos/internal/services/api/todos/domain"
	todosmod "todos/internal/services/api/todos/module"
	"todos/internal/services/api/todos/repo/repotest"
	"todos/internal/services/api/todos/service"

	"github.com/go-chi/chi/v5"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func newAPI(t *testing.T) *chi.Mux {
	t.Helper()
	testkit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	cfg := config.New().Prefix("API_T_")
	deps := modkit.Deps{Cfg: cfg, Store: &store.Store{}}
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config: cfg,
		Meter:  sdkmetric.NewMeterProvider(),
		Modules: []module.Module{
			metamod.New(deps),
			todosmod.New(deps, modkit.WithPorts[domain.ServicePort](service.NewWithStore(repotest.NewMemory()))),
		},
	})
	return mux
}

func send(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	mux.ServeHTTP(rec, req)
	return rec
}

func TestMount_TodosThroughRootStack(t *testing.T) {
	mux := newAPI(t)

	rec := send(mux, http.MethodPost, "/todos", `{"title":"a","content":"b"}`)
	if rec.Code != http.StatusCreated || strings.TrimSpace(rec.Body.String()) != `{"id":1,"title":"a","content":"b"}` {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}

	rec = send(mux, http.MethodGet, "/todos/", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"limit":10,"offset":0,"total":1,"items":[{"id":1,"title":"a","content":"b"}]}` {
		t.Fatalf("list: %d %s", rec.Code, rec.Body.String())
	}

	rec = send(mux, http.MethodGet, "/todos/x", "")
	if rec.Code != http.StatusBadRequest || rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("bad id: %d request id %q", rec.Code, rec.Header().Get("X-Request-ID"))
	}
}

func TestMount_HeartbeatAndMeta(t *testing.T) {
	mux := newAPI(t)

	if rec := send(mux, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("heartbeat: %d", rec.Code)
	}
	if rec := send(mux, http.MethodGet, "/meta/ready", ""); rec.Code != http.StatusOK {
		t.Fatalf("ready: %d %s", rec.Code, rec.Body.String())
	}
	if rec := send(mux, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound ||
		strings.TrimSpace(rec.Body.String()) != `{"code":404,"message":"not found"}` {
		t.Fatalf("unknown route: %d %s", rec.Code, rec.Body.String())
	}
	if rec := send(mux, http.MethodGet, "/todos/1/extra", ""); rec.Code != http.StatusNotFound ||
		strings.TrimSpace(rec.Body.String()) != `{"code":404,"message":"not found"}` {
		t.Fatalf("unknown nested route: %d %s", rec.Code, rec.Body.String())
	}
	// swagger and profiler default off when not requested
	if rec := send(mux, http.MethodGet, "/api/docs/doc.json", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("docs should be disabled: %d", rec.Code)
	}
}

func TestMount_RegistersPorts(t *testing.T) {
	newAPI(t)

	if got := module.Names(); len(got) != 2 || got[0] != "meta" || got[1] != "todos" {
		t.Fatalf("registered modules = %v", got)
	}
}

func TestOptions_Deps(t *testing.T) {
	t.Parallel()

	if d := (Options{}).Deps(); d.HasPG() || d.Store != nil {
		t.Fatalf("empty options should not wire pg: %+v", d)
	}
	st := &store.Store{}
	if d := (Options{Store: st}).Deps(); d.Store != st {
		t.Fatalf("store not passed through")
	}
}
