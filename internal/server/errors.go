// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrListen is returned when the listener cannot be bound.
	ErrListen = errors.New("error binding listener")

	// ErrServe is returned when the server stops serving on its own.
	ErrServe = errors.New("error serving HTTP")

	// ErrShutdown is returned when in-flight requests did not drain within
	// the shutdown timeout.
	ErrShutdown = errors.New("error shutting down HTTP server")
)
