// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// StructuredConfig is the effective configuration of the process. It is
// built once by [GetStructuredConfig] and treated as read-only afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: post-merge checks (go-playground/validator).
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Auth    Auth    `envPrefix:"JWT_"`
	CORS    CORS    `envPrefix:"CORS_"`
	Storage Storage
	Server  Server

	// ConfigDir is the directory searched for appsettings files.
	ConfigDir string `env:"CONFIG_DIR"`
}

// App holds process identity settings.
type App struct {
	// Name is attached to every log entry as the application enrichment.
	// Env: APP_NAME
	Name string `env:"NAME" validate:"required"`

	// Environment selects the appsettings overlay and the bind address.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT" validate:"required"`
}

// IsDevelopment reports whether the process runs in the Development environment.
func (a App) IsDevelopment() bool {
	return strings.EqualFold(a.Environment, EnvironmentDevelopment)
}

// Auth holds bearer token settings.
type Auth struct {
	// SecretKey is the symmetric signing secret.
	// Env: JWT_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" validate:"required"`
}

// UsesInsecureDefault reports whether the development-only fallback secret
// is in effect.
func (a Auth) UsesInsecureDefault() bool {
	return a.SecretKey == InsecureDevelopmentSecret
}

// CORS holds the allowed origin list. A single "*" entry means any origin.
type CORS struct {
	// Env: CORS_ORIGINS (comma-separated)
	Origins []string `env:"ORIGINS" envSeparator:"," validate:"required,min=1,dive,required"`
}

// Storage groups persistence settings consumed by the data-access layer.
type Storage struct {
	Mongo Mongo `envPrefix:"MONGODB_"`
}

// Mongo is injected from the environment only; env values overwrite
// whatever the appsettings files contain.
type Mongo struct {
	// Env: MONGODB_CONNECTION_STRING
	ConnectionString string `env:"CONNECTION_STRING"`

	// Env: MONGODB_DATABASE_NAME
	DatabaseName string `env:"DATABASE_NAME"`
}

// Server holds listener settings.
type Server struct {
	// Port is the TCP port the API listens on.
	// Env: PORT
	Port int `env:"PORT" validate:"min=1,max=65535"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// GetStructuredConfig resolves the configuration from the process
// environment, os.Args and the appsettings files.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load resolves the configuration using args as the command-line flags.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}

// MarshalZerologObject writes a redacted summary of the configuration.
func (c *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("application", c.App.Name).
		Str("environment", c.App.Environment).
		Int("port", c.Server.Port).
		Strs("cors_origins", c.CORS.Origins).
		Str("mongo_database", c.Storage.Mongo.DatabaseName).
		Bool("mongo_connection_set", c.Storage.Mongo.ConnectionString != "").
		Bool("insecure_jwt_secret", c.Auth.UsesInsecureDefault())
}
