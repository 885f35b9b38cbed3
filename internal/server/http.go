package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/rs/zerolog"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg *config.StructuredConfig, log *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              BindAddress(cfg),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          log.Subsystem(logger.SubsystemFrameworkHTTP).StdLogger(zerolog.WarnLevel),
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		logger:          log,
	}
}

// listen binds synchronously so that address errors surface before serving.
func (h *httpServer) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListen, h.server.Addr, err)
	}
	return listener, nil
}

// serve blocks until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func (h *httpServer) serve(ctx context.Context, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrServe, err)
	case <-ctx.Done():
	}

	h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("HTTP server Shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		_ = h.server.Close()
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}

	<-serveErr
	return nil
}
