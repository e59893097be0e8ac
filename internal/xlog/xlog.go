// Package xlog is a minimal zerolog wrapper, mirroring the shape of
// github.com/kbukum/gokit/logger's New/NewDefault constructors: a small
// struct around a zerolog.Logger that stamps every line with a component
// name, kept internal because this package's diagnostic seam is the only
// caller.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with a fixed component name.
type Logger struct {
	logger    zerolog.Logger
	component string
}

// New wraps an existing zerolog.Logger, tagging every line it emits with
// component.
func New(base zerolog.Logger, component string) *Logger {
	return &Logger{logger: base.With().Str("component", component).Logger(), component: component}
}

// NewDefault builds a console-friendly logger writing to stderr at debug
// level, for callers that want tracing without wiring up their own
// zerolog.Logger first.
func NewDefault(component string) *Logger {
	base := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	return New(base, component)
}

// Debug logs msg at debug level with the given correlation id and
// key/value fields.
func (l *Logger) Debug(correlationID string, msg string, fields map[string]any) {
	evt := l.logger.Debug().Str("correlation_id", correlationID)
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(msg)
}
