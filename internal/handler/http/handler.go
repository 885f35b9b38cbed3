package http

import (
	"time"

	"github.com/MKhiriev/go-task-manager/internal/auth"
	"github.com/MKhiriev/go-task-manager/internal/cors"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Handler struct {
	validator   TokenValidator
	cors        *cors.Policy
	access      *auth.AccessPolicy
	environment string
	registrars  []RouteRegistrar

	registry *prometheus.Registry
	metrics  *requestMetrics

	router *chi.Mux
	now    func() time.Time

	logger *logger.Logger
}

func NewHandler(validator TokenValidator, policy *cors.Policy, environment string, logger *logger.Logger, registrars ...RouteRegistrar) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Str("cors_mode", policy.Mode().String()).Msg("http handler created")
	return &Handler{
		validator:   validator,
		cors:        policy,
		access:      auth.NewAccessPolicy(),
		environment: environment,
		registrars:  registrars,
		registry:    registry,
		metrics:     newRequestMetrics(registry),
		now:         time.Now,
		logger:      logger,
	}
}
