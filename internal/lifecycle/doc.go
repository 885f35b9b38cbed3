// Package lifecycle drives the process from start to exit.
//
// A [Controller] builds the logging context first, resolves the
// configuration, assembles the request pipeline and runs the server until a
// termination signal arrives. Every startup or runtime fault ends in a single
// fatal-level entry, and the logging context is flushed on every exit path.
package lifecycle
