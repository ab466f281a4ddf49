package middleware

import (
	"net/http"
	"runtime/debug"

	perr "todos/internal/platform/errors"
	"todos/internal/platform/logger"
	phttp "todos/internal/platform/net/http"
)

// RecoverJSON turns a handler panic into the generic JSON 500. The panic value
// and stack are logged, never sent. http.ErrAbortHandler is re-panicked so
// net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.WithOp(perr.PanicErrf("panic: %v", v), "recover"))
		}()
		next.ServeHTTP(w, r)
	})
}
