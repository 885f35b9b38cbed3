package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// configBuilder collects configuration sources in priority order. Sources
// appended first win: mergo only fills fields that are still zero.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// withDotEnv loads path into the process environment. Variables that are
// already set keep their values. A missing file is not an error.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("%w %s: %w", ErrDotEnv, path, err))
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv(nil)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags.normalize())
	return b
}

// withFile reads the appsettings files from the directory and for the
// environment resolved by the sources collected so far.
func (b *configBuilder) withFile() *configBuilder {
	dir, environment := defaults().ConfigDir, EnvironmentProduction
	if d := b.first(func(c *StructuredConfig) string { return c.ConfigDir }); d != "" {
		dir = d
	}
	if e := b.first(func(c *StructuredConfig) string { return c.App.Environment }); e != "" {
		environment = e
	}

	fileCfg, err := parseFile(dir, environment)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fileCfg.normalize())
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) first(field func(*StructuredConfig) string) string {
	for _, cfg := range b.configs {
		if v := field(cfg); v != "" {
			return v
		}
	}
	return ""
}

// normalize is the single place where an origin list from any source is
// cleaned up. An all-blank list becomes nil so a lower source can fill it.
func (c *StructuredConfig) normalize() *StructuredConfig {
	c.CORS.Origins = splitOrigins(c.CORS.Origins...)
	return c
}

func (c *StructuredConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// splitOrigins splits every value on commas, trims whitespace and drops
// empty entries.
func splitOrigins(values ...string) []string {
	var origins []string
	for _, value := range values {
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	return origins
}
