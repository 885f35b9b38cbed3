package config

import (
	"flag"
	"fmt"
)

// parseFlags parses the command-line flags in args on a fresh FlagSet.
//
// Flags:
//
//	-p port to listen on
//	-e environment name (Development, Production, ...)
//	-c directory containing appsettings files
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		port        int
		environment string
		configDir   string
	)

	fs := flag.NewFlagSet("task-manager-api", flag.ContinueOnError)
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&environment, "e", "", "Environment name")
	fs.StringVar(&configDir, "c", "", "Directory with appsettings files")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Server: Server{
			Port: port,
		},
		ConfigDir: configDir,
	}, nil
}
