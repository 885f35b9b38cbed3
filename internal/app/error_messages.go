// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// task-manager API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of a request.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve. The failure itself is
	// only logged.
	MsgInternalServerError = "internal server error"

	// MsgAuthenticationRequired is returned when a protected route is
	// requested without a valid bearer token.
	MsgAuthenticationRequired = "authentication required"

	// MsgCrossOriginRejected is returned when the request Origin is not in
	// the configured CORS origin list.
	MsgCrossOriginRejected = "cross-origin request rejected"

	// MsgRouteNotFound is returned when no route matches the request path.
	MsgRouteNotFound = "resource not found"

	// MsgMethodNotAllowed is returned when the path exists but does not
	// handle the request method.
	MsgMethodNotAllowed = "method not allowed"
)
