package config

import "time"

const (
	// ApplicationName is the default application enrichment value.
	ApplicationName = "task-manager-api"

	EnvironmentDevelopment = "Development"
	EnvironmentProduction  = "Production"

	// InsecureDevelopmentSecret is the signing secret used when neither
	// JWT_SECRET_KEY nor JWT:SecretKey is set. Development only.
	InsecureDevelopmentSecret = "insecure-development-only-jwt-secret-do-not-deploy"

	// CORSWildcard is the single-entry origin list that allows any origin.
	CORSWildcard = "*"

	DefaultPort            = 5000
	DefaultShutdownTimeout = 10 * time.Second

	// DotEnvFile is loaded into the environment when present.
	DotEnvFile = ".env"
)

// defaults returns a fresh copy so merged slices are never shared between
// resolutions.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:        ApplicationName,
			Environment: EnvironmentProduction,
		},
		Auth: Auth{
			SecretKey: InsecureDevelopmentSecret,
		},
		CORS: CORS{
			Origins: []string{CORSWildcard},
		},
		Server: Server{
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		ConfigDir: ".",
	}
}
