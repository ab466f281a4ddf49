package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"todos/internal/modkit/httpkit"
	phttp "todos/internal/platform/net/http"
	"todos/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func tag(v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Trail", v)
			next.ServeHTTP(w, r)
		})
	}
}

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) }
}

func TestBuild(t *testing.T) {
	t.Parallel()

	b := Build("todos", "/todos")
	if b.Name != "todos" || b.Prefix != "/todos" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("defaults = %+v", b)
	}

	mw := []func(http.Handler) http.Handler{tag("a")}
	b = Build("todos", "/todos",
		WithPrefix("v2/todos/"),
		WithMiddlewares(mw...),
		WithMiddlewares(tag("b")),
		WithPorts("stub"),
	)
	if b.Prefix != "/v2/todos" {
		t.Fatalf("Prefix = %q", b.Prefix)
	}
	if b.Ports != "stub" || len(b.Mw) != 2 {
		t.Fatalf("built = %+v", b)
	}
	mw[0] = nil
	if b.Mw[0] == nil {
		t.Fatal("Built shares the caller's middleware slice")
	}
}

func TestBuild_Panics(t *testing.T) {
	t.Parallel()

	testkit.MustPanicWith(t, "module name is required", func() { Build(" ", "/todos") })
	testkit.MustPanicWith(t, "root path is required", func() { Build("todos", "/") })
	testkit.MustPanicWith(t, "root path is required", func() { Build("todos", "/todos", WithPrefix("")) })
}

func TestBuilt_Mount(t *testing.T) {
	t.Parallel()

	var order []string
	b := Build("todos", "todos/",
		WithMiddlewares(tag("first"), tag("second")),
		WithRegister(func(r httpkit.Router) {
			order = append(order, "hook1")
			r.Get("/extra", status(http.StatusAccepted))
		}),
		WithRegister(func(httpkit.Router) { order = append(order, "hook2") }),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		order = append(order, "own")
		r.Get("/", status(http.StatusOK))
	})
	if len(order) != 3 || order[0] != "own" || order[1] != "hook1" || order[2] != "hook2" {
		t.Fatalf("mount order = %v", order)
	}

	cases := map[string]int{
		"/todos":       http.StatusOK,
		"/todos/extra": http.StatusAccepted,
		"/other":       http.StatusNotFound,
	}
	for path, want := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != want {
			t.Fatalf("GET %s = %d, want %d", path, rec.Code, want)
		}
		trail := rec.Header().Values("X-Trail")
		if want == http.StatusNotFound {
			if len(trail) != 0 {
				t.Fatalf("module middleware ran outside its prefix: %v", trail)
			}
			continue
		}
		if len(trail) != 2 || trail[0] != "first" || trail[1] != "second" {
			t.Fatalf("GET %s middleware trail = %v", path, trail)
		}
	}
}

func TestBuilt_MountWithoutOwnRoutes(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	Build("extra", "/extra", WithRegister(func(r httpkit.Router) {
		r.Get("/ping", status(http.StatusNoContent))
	})).Mount(phttp.AdaptChi(mux), nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extra/ping", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}
