// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a configuration from environ, keyed by the `env` and
// `envPrefix` tags on [StructuredConfig]. A nil environ reads the process
// environment, which is what the builder does after .env files are loaded.
//
// Empty variables count as unset, so they never shadow a lower-priority
// source. A value that does not convert to its field type (PORT=abc) fails
// with an error naming the field.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{
		Environment: environ,
	})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg.normalize(), nil
}
