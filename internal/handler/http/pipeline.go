package http

import "net/http"

// Stage names in pipeline order.
const (
	StageExceptionBoundary = "exception-boundary"
	StageRequestLogging    = "request-logging"
	StageCORS              = "cors"
	StageAuthentication    = "authentication"
	StageAuthorization     = "authorization"
)

// Stage is one step of the request pipeline. A stage either writes a
// response and stops, or calls the next stage.
type Stage struct {
	Name       string
	Middleware func(http.Handler) http.Handler
}

// Stages returns the pipeline, outermost first. The order is fixed: CORS
// runs before authentication so unauthenticated preflights get their
// headers, and authentication runs before authorization.
func (h *Handler) Stages() []Stage {
	return []Stage{
		{Name: StageExceptionBoundary, Middleware: h.recoverer},
		{Name: StageRequestLogging, Middleware: h.requestLogging},
		{Name: StageCORS, Middleware: h.withCORS},
		{Name: StageAuthentication, Middleware: h.authenticate},
		{Name: StageAuthorization, Middleware: h.authorize},
	}
}

// requestLogging assigns the trace id before the access log is taken so
// that every entry of the request carries it.
func (h *Handler) requestLogging(next http.Handler) http.Handler {
	return h.withTraceID(h.withLogging(next))
}
