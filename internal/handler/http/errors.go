// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-task-manager/internal/app"
)

// Sentinel errors used by the authentication stage when parsing the
// "Authorization" HTTP header. They are logged, never returned to clients.
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthorizationScheme is returned for schemes other than Bearer.
	ErrUnsupportedAuthorizationScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Rejections produced by the pipeline itself.
var (
	ErrCrossOriginRejected = errors.New(app.MsgCrossOriginRejected)
	ErrPrincipalRequired   = errors.New(app.MsgAuthenticationRequired)
	ErrRouteNotFound       = errors.New(app.MsgRouteNotFound)
	ErrMethodNotAllowed    = errors.New(app.MsgMethodNotAllowed)
)
