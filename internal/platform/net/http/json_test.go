package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type inDTO struct {
	N *int `json:"n" validate:"required"`
}

func TestJSONHandler_Success(t *testing.T) {
	t.Parallel()

	// doubles the input
	h := JSONHandler[inDTO](func(_ *http.Request, in inDTO) (any, error) {
		return map[string]int{"doubled": *in.N * 2}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"n":7}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, `"doubled":14`) {
		t.Fatalf("body %q missing doubled result", body)
	}
}

func TestJSONHandler_ResponsePassThrough(t *testing.T) {
	t.Parallel()

	h := JSONHandler[inDTO](func(_ *http.Request, in inDTO) (any, error) {
		return Created(map[string]int{"n": *in.N}), nil
	})

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"n":3}`))
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"n":3}` {
		t.Fatalf("body = %q, want bare object", got)
	}
}

func TestJSONHandler_BindErrors(t *testing.T) {
	t.Parallel()

	h := JSONHandler[inDTO](func(_ *http.Request, _ inDTO) (any, error) {
		t.Error("handler should not be called on bind error")
		return nil, nil
	})

	cases := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `{`, `{"code":400,"message":"invalid JSON body"}`},
		{"missing field", `{}`, `{"code":400,"message":"n is a required field","path":"n"}`},
		{"wrong type", `{"n":"x"}`, `{"code":400,"message":"invalid JSON body"}`},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(c.body))
		rr := httptest.NewRecorder()
		h(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", c.name, rr.Code)
		}
		if got := strings.TrimSpace(rr.Body.String()); got != c.want {
			t.Fatalf("%s: body = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestJSONHandler_HandlerErrorIsHidden(t *testing.T) {
	t.Parallel()

	h := JSONHandler[inDTO](func(_ *http.Request, _ inDTO) (any, error) {
		return nil, errors.New("boom")
	})

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"n":1}`))
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("internal detail leaked: %q", rr.Body.String())
	}
}
