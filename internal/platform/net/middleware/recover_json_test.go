package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todos/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRecoverJSON_GenericBody(t *testing.T) {
	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("db pool exploded")
	})

	chain := chimw.RequestID(middleware.RequestContext(middleware.RecoverJSON(h)))
	req := httptest.NewRequest(http.MethodGet, "/todos/1", nil)
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if got, want := strings.TrimSpace(rr.Body.String()), `{"code":500,"message":"internal server error"}`; got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
	if strings.Contains(rr.Body.String(), "exploded") {
		t.Fatal("panic value leaked to client")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID on panic response")
	}
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	rr := httptest.NewRecorder()
	middleware.RecoverJSON(h).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/todos/1", nil))
	if rr.Code != http.StatusNoContent || rr.Body.Len() != 0 {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Body.String())
	}
}

func TestRecoverJSON_RepanicsAbortHandler(t *testing.T) {
	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})
	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Fatalf("recover = %v, want ErrAbortHandler", v)
		}
	}()
	middleware.RecoverJSON(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
