package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
	mePath      = "/api/auth/me"
)

// Init builds the router: pipeline stages in order, then the routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	h.router = router

	for _, stage := range h.Stages() {
		router.Use(stage.Middleware)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.checkHTTPMethod)

	// routes without authorization
	router.Get(healthPath, h.health)
	router.Method(http.MethodGet, metricsPath, promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{Registry: h.registry}))
	h.access.AllowAnonymous(healthPath, metricsPath)

	// protected routes
	router.Get(mePath, h.currentPrincipal)
	for _, registrar := range h.registrars {
		registrar.RegisterRoutes(router, h.access)
	}

	return router
}

// routePattern resolves the route the router will dispatch r to, without
// touching the request's own routing context. It returns "" when no route
// handles the path and method.
func (h *Handler) routePattern(r *http.Request) string {
	if h.router == nil {
		return ""
	}
	path := r.URL.RawPath
	if path == "" {
		path = r.URL.Path
	}
	return h.router.Find(chi.NewRouteContext(), r.Method, path)
}
