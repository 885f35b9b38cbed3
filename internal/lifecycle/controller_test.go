package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/auth"
	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	handler http.Handler
	run     func(ctx context.Context) error
}

func (f *fakeServer) Run(ctx context.Context) error {
	if f.run == nil {
		return nil
	}
	return f.run(ctx)
}

type harness struct {
	console bytes.Buffer
	dir     string
	log     *logger.Logger
	server  *fakeServer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{dir: t.TempDir(), server: &fakeServer{}}
}

func (h *harness) loggerFactory() (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Application: "test",
		Console:     &h.console,
		NoColor:     true,
		Dir:         h.dir,
	})
	h.log = log
	return log, err
}

func (h *harness) serverFactory(handler http.Handler, _ *config.StructuredConfig, _ *logger.Logger) server.Server {
	h.server.handler = handler
	return h.server
}

func (h *harness) fileContents(t *testing.T) string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(h.dir, logger.FilePrefix+"*"+logger.FileExt))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	return string(data)
}

func validConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{Name: "tasks-staging", Environment: "Staging"},
		Auth:   config.Auth{SecretKey: "secretA"},
		CORS:   config.CORS{Origins: []string{"*"}},
		Server: config.Server{Port: 5000, ShutdownTimeout: time.Second},
	}
}

func (h *harness) controller(cfg *config.StructuredConfig, cfgErr error) *Controller {
	return NewController(
		WithLoggerFactory(h.loggerFactory),
		WithConfigLoader(func() (*config.StructuredConfig, error) { return cfg, cfgErr }),
		WithServerFactory(h.serverFactory),
	)
}

func TestRun_Succeeds(t *testing.T) {
	h := newHarness(t)
	c := h.controller(validConfig(), nil)

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, []State{
		StateInitializing,
		StateConfiguring,
		StateRunning,
		StateSucceeded,
		StateShuttingDown,
		StateTerminated,
	}, c.States())
	assert.Equal(t, StateTerminated, c.State())
	assert.True(t, h.log.Closed())
	assert.NotContains(t, h.console.String(), "FTL")
	assert.NotContains(t, h.console.String(), "insecure")

	// entries after configuration carry the configured application name
	assert.Contains(t, h.console.String(), "application=tasks-staging")
	assert.Contains(t, h.fileContents(t), "application=tasks-staging")
	var summary string
	for _, line := range strings.Split(h.console.String(), "\n") {
		if strings.Contains(line, "configuration resolved") {
			summary = line
		}
	}
	assert.Contains(t, summary, "application=tasks-staging")
	assert.Contains(t, summary, `"application":"tasks-staging"`)

	// the assembled pipeline is what the server receives
	require.NotNil(t, h.server.handler)
	rr := httptest.NewRecorder()
	h.server.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"environment":"Staging"`)
}

func TestRun_WarnsOnInsecureSecret(t *testing.T) {
	h := newHarness(t)
	cfg := validConfig()
	cfg.Auth.SecretKey = config.InsecureDevelopmentSecret

	require.NoError(t, h.controller(cfg, nil).Run(context.Background()))

	assert.Contains(t, h.console.String(), "WRN")
	assert.Contains(t, h.console.String(), "insecure development-only signing secret")
}

func TestRun_FaultPaths(t *testing.T) {
	tests := []struct {
		name       string
		cfg        func() *config.StructuredConfig
		cfgErr     error
		serverRun  func(ctx context.Context) error
		wantErr    error
		wantStates []State
	}{
		{
			name: "empty signing secret",
			cfg: func() *config.StructuredConfig {
				cfg := validConfig()
				cfg.Auth.SecretKey = ""
				return cfg
			},
			wantErr:    auth.ErrEmptySigningKey,
			wantStates: []State{StateInitializing, StateConfiguring, StateFaulted, StateShuttingDown, StateTerminated},
		},
		{
			name:       "configuration error",
			cfg:        func() *config.StructuredConfig { return nil },
			cfgErr:     config.ErrInvalidConfig,
			wantErr:    ErrConfiguration,
			wantStates: []State{StateInitializing, StateConfiguring, StateFaulted, StateShuttingDown, StateTerminated},
		},
		{
			name:      "server error",
			cfg:       validConfig,
			serverRun: func(context.Context) error { return server.ErrListen },
			wantErr:   server.ErrListen,
			wantStates: []State{
				StateInitializing, StateConfiguring, StateRunning, StateFaulted, StateShuttingDown, StateTerminated,
			},
		},
		{
			name:      "panic while running",
			cfg:       validConfig,
			serverRun: func(context.Context) error { panic("listener exploded") },
			wantErr:   ErrUnexpectedShutdown,
			wantStates: []State{
				StateInitializing, StateConfiguring, StateRunning, StateFaulted, StateShuttingDown, StateTerminated,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.server.run = tt.serverRun
			c := h.controller(tt.cfg(), tt.cfgErr)

			err := c.Run(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantStates, c.States())
			assert.True(t, h.log.Closed())

			// exactly one fatal entry, present in both sinks
			assert.Equal(t, 1, strings.Count(h.console.String(), "FTL"))
			assert.Contains(t, h.fileContents(t), "FTL")
			assert.Contains(t, h.fileContents(t), "host terminated unexpectedly")
		})
	}
}

func TestRun_LoggerFactoryFails(t *testing.T) {
	boom := errors.New("disk full")
	serverCreated := false
	c := NewController(
		WithLoggerFactory(func() (*logger.Logger, error) { return nil, boom }),
		WithConfigLoader(func() (*config.StructuredConfig, error) { return validConfig(), nil }),
		WithServerFactory(func(http.Handler, *config.StructuredConfig, *logger.Logger) server.Server {
			serverCreated = true
			return &fakeServer{}
		}),
	)

	err := c.Run(context.Background())

	assert.ErrorIs(t, err, ErrLoggerInit)
	assert.ErrorIs(t, err, boom)
	assert.False(t, serverCreated)
	assert.Equal(t, []State{StateInitializing, StateFaulted, StateShuttingDown, StateTerminated}, c.States())
}

func TestRun_StopsWhenContextCancelled(t *testing.T) {
	h := newHarness(t)
	h.server.run = func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}
	c := h.controller(validConfig(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, c.Run(ctx))
	assert.Contains(t, c.States(), StateSucceeded)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "ShuttingDown", StateShuttingDown.String())
	assert.Equal(t, "Unknown", State(42).String())
}
