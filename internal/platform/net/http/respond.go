// Package http provides helpers for writing JSON responses and mounting handlers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "todos/internal/platform/errors"
	"todos/internal/platform/logger"
	pnet "todos/internal/platform/net"
)

// Page is the pagination envelope returned by list endpoints
type Page[T any] struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
	Total  int64 `json:"total"`
	Items  []T   `json:"items"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("encode response")
	}
}

// RespondError maps a project error into the client wire and writes it.
// Server side failures are logged with their cause; the client only sees the generic body
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wr := perr.HTTP(err)
	if status >= stdhttp.StatusInternalServerError {
		evt := logger.C(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path)
		if e, ok := perr.As(err); ok && e.Op() != "" {
			evt = evt.Str("op", e.Op())
		}
		evt.Msg("request failed")
	}
	if reqID := pnet.RequestID(r.Context()); reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	JSON(w, status, wr)
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and wire body
func Error(err error) Response { return Response{Body: err} }

// List returns a 200 response with the pagination envelope; items is never null on the wire
func List[T any](items []T, limit, offset, total int64) Response {
	if items == nil {
		items = []T{}
	}
	return OK(Page[T]{Limit: limit, Offset: offset, Total: total, Items: items})
}
