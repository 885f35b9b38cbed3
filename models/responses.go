package models

import "time"

// HealthStatusHealthy is the literal status marker of the liveness payload.
const HealthStatusHealthy = "Healthy"

// HealthReport is the fixed-shape body of GET /health.
type HealthReport struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// ErrorResponse is the body of every response the request pipeline produces
// on its own behalf: rejections, unknown routes and recovered failures.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	TraceID string `json:"traceId,omitempty"`
}
