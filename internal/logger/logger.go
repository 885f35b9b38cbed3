// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger owns the process logging context of the task-manager API.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, WithLevel, etc.) are available directly on
// *Logger. A Logger built by [New] writes every entry to a human-readable
// console sink and to a rolling daily file sink, and must be released with
// [Logger.Close] when the process ends. Request-scoped loggers are obtained
// via FromContext or FromRequest.
package logger

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// ApplicationFieldName is the enrichment field present on every entry.
	ApplicationFieldName = "application"

	ConsoleTimeFormat = "15:04:05"
	FileTimeFormat    = "2006-01-02 15:04:05 -07:00"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	overrides map[string]zerolog.Level
	sinks     *sinkSet
	writer    io.Writer
}

// Options configures [New]. Zero fields take the package defaults.
type Options struct {
	// Application is written to every entry as the "application" field.
	Application string

	// Console receives the human-readable stream. Defaults to os.Stdout.
	Console io.Writer
	NoColor bool

	// Dir holds the daily log files. Defaults to [LogsDir].
	Dir string
	// RetainedFiles caps the number of daily files kept. Defaults to [RetainedFileCount].
	RetainedFiles int

	// Overrides maps subsystem names to minimum levels. Defaults to [DefaultOverrides].
	Overrides map[string]zerolog.Level

	// Clock drives file rotation. Defaults to the local wall clock.
	Clock func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Application == "" {
		o.Application = filepath.Base(os.Args[0])
	}
	if o.Console == nil {
		o.Console = os.Stdout
	}
	if o.Dir == "" {
		o.Dir = LogsDir
	}
	if o.RetainedFiles <= 0 {
		o.RetainedFiles = RetainedFileCount
	}
	if o.Overrides == nil {
		o.Overrides = DefaultOverrides()
	}
	return o
}

// New constructs the process logging context.
//
// The global zerolog level is set to Debug, which is the floor for every
// subsystem. Entries fan out to the console and the rolling file through a
// zerolog.MultiLevelWriter; both render the same single-line template of
// timestamp, level, message and fields (including the error, when present).
func New(opts Options) (*Logger, error) {
	opts = opts.withDefaults()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	file, err := newDailyFile(opts.Dir, opts.RetainedFiles, opts.Clock)
	if err != nil {
		return nil, err
	}

	writer := zerolog.MultiLevelWriter(
		newConsoleWriter(opts.Console, opts.NoColor, ConsoleTimeFormat),
		newConsoleWriter(file, true, FileTimeFormat),
	)

	return &Logger{
		Logger:    enriched(writer, opts.Application),
		overrides: opts.Overrides,
		sinks:     &sinkSet{closers: []io.Closer{file}},
		writer:    writer,
	}, nil
}

func enriched(w io.Writer, application string) zerolog.Logger {
	return zerolog.New(w).With().
		Timestamp().
		Str(ApplicationFieldName, application).
		Logger()
}

// WithApplication returns a logger over the same sinks whose entries carry
// application instead of the name given to [New]. Fields added to the
// receiver are not carried over.
func (l *Logger) WithApplication(application string) *Logger {
	if l.writer == nil {
		return l.GetChildLogger()
	}
	return &Logger{
		Logger:    enriched(l.writer, application).Level(l.GetLevel()),
		overrides: l.overrides,
		sinks:     l.sinks,
		writer:    l.writer,
	}
}

func newConsoleWriter(out io.Writer, noColor bool, timeFormat string) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: timeFormat,
	}
}

// Close flushes and closes the sinks. Only the first call does any work;
// later calls return the first result.
func (l *Logger) Close() error {
	if l.sinks == nil {
		return nil
	}
	return l.sinks.close()
}

// Closed reports whether the sinks have been released.
func (l *Logger) Closed() bool {
	if l.sinks == nil {
		return false
	}
	l.sinks.mu.Lock()
	defer l.sinks.mu.Unlock()
	return l.sinks.closed
}

type sinkSet struct {
	once    sync.Once
	mu      sync.Mutex
	closers []io.Closer
	closed  bool
	err     error
}

func (s *sinkSet) close() error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, c := range s.closers {
			s.err = errors.Join(s.err, c.Close())
		}
		s.closed = true
	})
	return s.err
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child shares the parent's sinks and overrides.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{
		Logger:    l.With().Logger(),
		overrides: l.overrides,
		sinks:     l.sinks,
		writer:    l.writer,
	}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger
// (disabled unless log.DefaultContextLogger is set), so this function never
// returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
