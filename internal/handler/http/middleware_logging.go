package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withLogging writes one access log entry per request once the response is
// produced and records the request metrics. It never short-circuits. A
// panic below is recorded as a 500, unless a status was already sent, and
// then passed on to the exception boundary.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		method := r.Method
		path := r.URL.Path

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			rec := recover()

			duration := time.Since(start)
			status := lw.status
			switch {
			case rec != nil && !lw.wroteHeader:
				status = http.StatusInternalServerError
			case status == 0:
				status = http.StatusOK
			}

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			h.metrics.observe(method, route, status, duration)

			log.Info().
				Str("method", method).
				Str("path", path).
				Str("route", route).
				Int("status", status).
				Dur("duration", duration).
				Int("size", lw.size).
				Bool("panicked", rec != nil).
				Msg("request handled")

			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}
