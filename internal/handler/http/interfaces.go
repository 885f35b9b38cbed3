package http

import (
	"context"

	"github.com/MKhiriev/go-task-manager/internal/auth"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/handler_mock.go -package=mock

// TokenValidator turns a bearer token into the principal it carries.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (models.Principal, error)
}

// RouteRegistrar contributes routes behind the full pipeline. Routes are
// protected unless the registrar lists their patterns with
// access.AllowAnonymous.
type RouteRegistrar interface {
	RegisterRoutes(router chi.Router, access *auth.AccessPolicy)
}
