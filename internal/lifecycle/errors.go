// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import "errors"

var (
	ErrLoggerInit         = errors.New("error initializing logging")
	ErrConfiguration      = errors.New("error resolving configuration")
	ErrAuthConfiguration  = errors.New("error configuring authentication")
	ErrUnexpectedShutdown = errors.New("host terminated unexpectedly")
)
