// Package net provides utilities for working with request contexts
package net

import (
	"context"

	"todos/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest annotates context with the request id and client address.
// The id is stored under chi's key so chimw.GetReqID sees it, and both
// values are mirrored onto the request-scoped logger fields
func WithRequest(ctx context.Context, reqID, remoteIP string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return logger.WithRequest(ctx, reqID, remoteIP)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
