// Package telemetry defines the narrow logging and metrics surfaces
// the bridge components depend on, plus poll counters for operators.
// Every implementation must tolerate nil receivers; components treat a
// nil Logger or Metrics as "discard".
package telemetry

import (
	"log"

	"github.com/rs/zerolog"
)

// Logger exposes the logging capability required by bridge components.
type Logger interface {
	Printf(format string, args ...any)
}

// LoggerFunc adapts functions into the Logger interface.
type LoggerFunc func(format string, args ...any)

// Printf implements Logger for LoggerFunc.
func (f LoggerFunc) Printf(format string, args ...any) {
	if f == nil {
		return
	}
	f(format, args...)
}

// WrapLogger adapts a standard library logger to the Logger interface.
func WrapLogger(logger *log.Logger) Logger {
	return &loggerAdapter{logger: logger}
}

type loggerAdapter struct {
	logger *log.Logger
}

func (l *loggerAdapter) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Printf(format, args...)
}

// WrapZerolog adapts a zerolog logger to the Logger interface. Bridge
// messages are emitted at debug level; they are poll-cadence noise in
// any production setup.
func WrapZerolog(logger zerolog.Logger) Logger {
	return &zerologAdapter{logger: logger}
}

type zerologAdapter struct {
	logger zerolog.Logger
}

func (l *zerologAdapter) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Debug().Msgf(format, args...)
}

// Metrics exposes the counter methods required by bridge components.
type Metrics interface {
	Add(key string, delta uint64)
	Store(key string, value uint64)
}
