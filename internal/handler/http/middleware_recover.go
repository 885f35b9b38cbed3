package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// recoverer is the exception boundary. A panic anywhere below it is logged
// with its stack and converted into a JSON 500 unless the response has
// already been started. http.ErrAbortHandler is re-panicked so the server
// aborts the connection as the standard library intends.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			h.logger.Error().
				Err(err).
				Str("trace_id", w.Header().Get(traceIDHeader)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bool("response_started", rw.wroteHeader).
				Bytes("stack", debug.Stack()).
				Msg("unhandled failure in request pipeline")

			if rw.wroteHeader {
				return
			}
			h.writeError(rw, errUnhandled)
		}()

		next.ServeHTTP(rw, r)
	})
}

var errUnhandled = errors.New("unhandled failure")
