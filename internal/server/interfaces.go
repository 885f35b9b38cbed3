package server

import "context"

// Server defines the lifecycle contract of the process transport.
//
// Run binds the listener, serves requests and blocks until ctx is cancelled
// or the process receives SIGINT, SIGTERM or SIGQUIT. It returns nil after a
// graceful shutdown.
type Server interface {
	Run(ctx context.Context) error
}
