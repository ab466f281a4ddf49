package middleware

import (
	"net/http"

	pnet "todos/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestContext copies the request id and client address onto the request context
// so logger.C picks them up. Mount it after RequestID and RealIP
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := pnet.WithRequest(r.Context(), chimw.GetReqID(r.Context()), r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
