package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// configFileNames lists the appsettings files in the order they are layered.
func configFileNames(environment string) []string {
	return []string{
		"appsettings.json",
		"appsettings." + environment + ".json",
	}
}

// parseFile reads appsettings.json and the environment overlay from dir.
// Missing files are skipped. Keys are case-insensitive, nested sections map
// to the colon-separated keys of the settings documents (JWT:SecretKey).
func parseFile(dir, environment string) (*StructuredConfig, error) {
	v := viper.New()
	v.SetConfigType("json")

	for _, name := range configFileNames(environment) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
		}

		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
		}
	}

	return &StructuredConfig{
		App: App{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.environment"),
		},
		Auth: Auth{
			SecretKey: v.GetString("jwt.secretkey"),
		},
		CORS: CORS{
			Origins: v.GetStringSlice("cors.origins"),
		},
		Storage: Storage{
			Mongo: Mongo{
				ConnectionString: v.GetString("mongodb.connectionstring"),
				DatabaseName:     v.GetString("mongodb.databasename"),
			},
		},
		Server: Server{
			Port:            v.GetInt("server.port"),
			ShutdownTimeout: v.GetDuration("server.shutdowntimeout"),
		},
	}, nil
}
