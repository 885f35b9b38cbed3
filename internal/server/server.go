package server

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
)

const (
	loopbackHost = "127.0.0.1"
	anyHost      = "0.0.0.0"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the HTTP server for handler. Nothing is bound until Run.
func NewServer(handler http.Handler, cfg *config.StructuredConfig, logger *logger.Logger) Server {
	logger.Info().Str("address", BindAddress(cfg)).Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}
}

// BindAddress is loopback-only in Development and all interfaces otherwise.
func BindAddress(cfg *config.StructuredConfig) string {
	host := anyHost
	if cfg.App.IsDevelopment() {
		host = loopbackHost
	}
	return net.JoinHostPort(host, strconv.Itoa(cfg.Server.Port))
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	s.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
	if err = s.httpServer.serve(ctx, listener); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
