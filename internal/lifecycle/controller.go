package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/MKhiriev/go-task-manager/internal/auth"
	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/cors"
	myHTTP "github.com/MKhiriev/go-task-manager/internal/handler/http"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/server"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/rs/zerolog"
)

type (
	// LoggerFactory builds the process logging context.
	LoggerFactory func() (*logger.Logger, error)

	// ConfigLoader resolves the effective configuration.
	ConfigLoader func() (*config.StructuredConfig, error)

	// ServerFactory creates the transport for the assembled pipeline.
	ServerFactory func(handler http.Handler, cfg *config.StructuredConfig, log *logger.Logger) server.Server
)

// Controller runs the process lifecycle once.
type Controller struct {
	newLogger  LoggerFactory
	loadConfig ConfigLoader
	newServer  ServerFactory
	registrars []myHTTP.RouteRegistrar
	buildInfo  models.AppBuildInfo

	mu     sync.Mutex
	states []State
	log    *logger.Logger
}

// Option customizes a [Controller].
type Option func(*Controller)

func WithLoggerFactory(f LoggerFactory) Option {
	return func(c *Controller) { c.newLogger = f }
}

func WithConfigLoader(f ConfigLoader) Option {
	return func(c *Controller) { c.loadConfig = f }
}

func WithServerFactory(f ServerFactory) Option {
	return func(c *Controller) { c.newServer = f }
}

// WithRouteRegistrars adds collaborators that register their routes on the
// pipeline's router.
func WithRouteRegistrars(registrars ...myHTTP.RouteRegistrar) Option {
	return func(c *Controller) { c.registrars = append(c.registrars, registrars...) }
}

func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(c *Controller) { c.buildInfo = info }
}

// NewController returns a controller wired to the production factories
// unless overridden by opts.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		newLogger: func() (*logger.Logger, error) {
			return logger.New(logger.Options{Application: config.ApplicationName})
		},
		loadConfig: config.GetStructuredConfig,
		newServer:  server.NewServer,
		buildInfo:  models.NewAppBuildInfo("", "", ""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// States returns the transitions recorded so far.
func (c *Controller) States() []State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.states)
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.states) == 0 {
		return StateInitializing
	}
	return c.states[len(c.states)-1]
}

// Run blocks until the server stops. A non-nil error means the process
// faulted and should exit with a failure status.
func (c *Controller) Run(ctx context.Context) (err error) {
	c.transition(StateInitializing)

	log, err := c.newLogger()
	if err != nil {
		c.transition(StateFaulted)
		c.transition(StateShuttingDown)
		c.transition(StateTerminated)
		return fmt.Errorf("%w: %w", ErrLoggerInit, err)
	}
	c.mu.Lock()
	c.log = log
	c.mu.Unlock()

	defer func() {
		c.transition(StateShuttingDown)
		c.transition(StateTerminated)
		if closeErr := log.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpectedShutdown, rec)
		}
		if err != nil {
			c.transition(StateFaulted)
			log.WithLevel(zerolog.FatalLevel).Err(err).Msg("host terminated unexpectedly")
			return
		}
		c.transition(StateSucceeded)
	}()

	c.transition(StateConfiguring)
	cfg, err := c.loadConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	// from here on entries carry the configured application name
	log = log.WithApplication(cfg.App.Name)
	c.mu.Lock()
	c.log = log
	c.mu.Unlock()

	srv, err := c.assemble(cfg, log)
	if err != nil {
		return err
	}

	c.transition(StateRunning)
	return srv.Run(ctx)
}

func (c *Controller) assemble(cfg *config.StructuredConfig, log *logger.Logger) (server.Server, error) {
	log.Info().
		Object("build", c.buildInfo).
		Object("config", cfg).
		Msg("configuration resolved")

	if cfg.Auth.UsesInsecureDefault() {
		log.Warn().Msg("JWT_SECRET_KEY is not set, using the insecure development-only signing secret")
	}

	rules, err := auth.NewValidationRules(cfg.Auth.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthConfiguration, err)
	}

	policy := cors.NewPolicy(cfg.CORS.Origins)
	router := myHTTP.NewHandler(rules, policy, cfg.App.Environment, log, c.registrars...).Init()

	return c.newServer(router, cfg, log), nil
}

func (c *Controller) transition(next State) {
	c.mu.Lock()
	c.states = append(c.states, next)
	log := c.log
	c.mu.Unlock()

	if log != nil {
		log.Info().Stringer("state", next).Msg("lifecycle state changed")
	}
}
