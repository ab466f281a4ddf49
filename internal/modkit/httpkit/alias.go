// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "todos/internal/platform/net/http"
	"todos/internal/platform/net/http/bind"
)

type (
	// Page is the pagination envelope of list endpoints
	Page[T any] = phttp.Page[T]

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// Kind tags the expected type of a path or query parameter
	Kind = bind.Kind
)

// Parameter kinds re-exported for handlers
const (
	KindUnsigned = bind.KindUnsigned
	KindInteger  = bind.KindInteger
	KindFloat    = bind.KindFloat
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and wire body
func Error(err error) Response { return phttp.Error(err) }

// List returns a 200 response with the pagination envelope
func List[T any](items []T, limit, offset, total int64) Response {
	return phttp.List(items, limit, offset, total)
}

// JSON binds and validates a T body before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn)
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// PathParam decodes a route parameter; see bind.PathParam
func PathParam[T bind.Number](r *http.Request, name string, kind Kind) (T, error) {
	return bind.PathParam[T](r, name, kind)
}

// QueryParam decodes an optional query parameter; see bind.QueryParam
func QueryParam[T bind.Number](r *http.Request, name string, kind Kind) (*T, error) {
	return bind.QueryParam[T](r, name, kind)
}
