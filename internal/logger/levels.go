package logger

import (
	stdlog "log"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// SubsystemFieldName tags entries written through [Logger.Subsystem].
	SubsystemFieldName = "subsystem"

	SubsystemFramework     = "framework"
	SubsystemFrameworkHTTP = "framework.http"
	SubsystemRuntime       = "runtime"
)

// DefaultOverrides returns the per-subsystem minimum levels. All of them are
// stricter than the global debug floor.
func DefaultOverrides() map[string]zerolog.Level {
	return map[string]zerolog.Level{
		SubsystemFramework:     zerolog.InfoLevel,
		SubsystemFrameworkHTTP: zerolog.WarnLevel,
		SubsystemRuntime:       zerolog.WarnLevel,
	}
}

// Subsystem returns a child logger for the dotted subsystem name. Its
// minimum level is the override with the longest matching prefix, or the
// receiver's own level when nothing matches.
func (l *Logger) Subsystem(name string) *Logger {
	child := l.GetChildLogger()
	child.Logger = child.With().
		Str(SubsystemFieldName, name).
		Logger().
		Level(l.levelFor(name))
	return child
}

func (l *Logger) levelFor(name string) zerolog.Level {
	level, matched := l.GetLevel(), ""
	for prefix, lvl := range l.overrides {
		if name != prefix && !strings.HasPrefix(name, prefix+".") {
			continue
		}
		if len(prefix) > len(matched) {
			level, matched = lvl, prefix
		}
	}
	return level
}

// StdLogger adapts the receiver to a *log.Logger whose lines are written at
// level. It is used for http.Server.ErrorLog.
func (l *Logger) StdLogger(level zerolog.Level) *stdlog.Logger {
	return stdlog.New(levelWriter{logger: l.Logger, level: level}, "", 0)
}

type levelWriter struct {
	logger zerolog.Logger
	level  zerolog.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	w.logger.WithLevel(w.level).Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
