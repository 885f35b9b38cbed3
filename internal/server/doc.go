// Package server runs the HTTP transport of the task-manager API.
//
// It owns the listener lifecycle: binding to the environment-dependent
// address, serving until a termination signal or context cancellation, and
// draining in-flight requests within the configured shutdown timeout.
package server
