package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "todos/internal/platform/net"
	"todos/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestContext_CarriesRequestID(t *testing.T) {
	var got string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = pnet.RequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "abc-123")
	chimw.RequestID(middleware.RequestContext(h)).ServeHTTP(httptest.NewRecorder(), req)

	if got != "abc-123" {
		t.Fatalf("request id = %q, want abc-123", got)
	}
}

func TestRequestContext_NoRequestID(t *testing.T) {
	called := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if id := pnet.RequestID(r.Context()); id != "" {
			t.Fatalf("unexpected request id %q", id)
		}
	})
	middleware.RequestContext(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatal("next not called")
	}
}
