// Package logger provides structured logging for the arithmetic
// engine, backed by zerolog. Logging happens only at construction
// boundaries (modulus setup, comb tables, commitment schemes, demo
// drivers); arithmetic hot paths never log.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger.
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Output is where logs are written (default: os.Stdout)
	Output io.Writer

	// Pretty enables human-readable console output
	Pretty bool

	// TimeFormat for timestamps (default: RFC3339)
	TimeFormat string

	// CallerEnabled adds file and line number to logs
	CallerEnabled bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Output:     os.Stdout,
		Pretty:     false,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new logger with the given configuration
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger()
	if cfg.CallerEnabled {
		zlog = zlog.With().Caller().Logger()
	}
	return &Logger{zlog: zlog}
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Event represents an in-flight log event
type Event struct {
	zevent *zerolog.Event
}

// Str adds a string field to the event
func (e *Event) Str(key, val string) *Event {
	e.zevent.Str(key, val)
	return e
}

// Int adds an int field to the event
func (e *Event) Int(key string, val int) *Event {
	e.zevent.Int(key, val)
	return e
}

// Uint64 adds a uint64 field to the event
func (e *Event) Uint64(key string, val uint64) *Event {
	e.zevent.Uint64(key, val)
	return e
}

// Hex adds a field rendered through its fmt.Stringer hex form; used
// for limb vectors, field elements and points.
func (e *Event) Hex(key string, val fmt.Stringer) *Event {
	e.zevent.Str(key, val.String())
	return e
}

// Dur adds a duration field to the event
func (e *Event) Dur(key string, val time.Duration) *Event {
	e.zevent.Dur(key, val)
	return e
}

// Err adds an error field to the event
func (e *Event) Err(err error) *Event {
	e.zevent.AnErr("error", err)
	return e
}

// Msg completes the event with a message
func (e *Event) Msg(msg string) {
	e.zevent.Msg(msg)
}

// DebugEvent returns a debug event on this logger
func (l *Logger) DebugEvent() *Event {
	return &Event{zevent: l.zlog.Debug()}
}

// InfoEvent returns an info event on this logger
func (l *Logger) InfoEvent() *Event {
	return &Event{zevent: l.zlog.Info()}
}

// ErrorEvent returns an error event on this logger
func (l *Logger) ErrorEvent() *Event {
	return &Event{zevent: l.zlog.Error()}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) { l.zlog.Debug().Msg(msg) }

// Info logs an info message
func (l *Logger) Info(msg string) { l.zlog.Info().Msg(msg) }

// Warn logs a warning message
func (l *Logger) Warn(msg string) { l.zlog.Warn().Msg(msg) }

// Error logs an error message
func (l *Logger) Error(msg string) { l.zlog.Error().Msg(msg) }

// Global logger instance
var globalLogger = New(DefaultConfig())

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	if logger != nil {
		globalLogger = logger
	}
}

// Debug logs a debug message using the global logger
func Debug(msg string) { globalLogger.Debug(msg) }

// Info logs an info message using the global logger
func Info(msg string) { globalLogger.Info(msg) }

// Warn logs a warning message using the global logger
func Warn(msg string) { globalLogger.Warn(msg) }

// Error logs an error message using the global logger
func Error(msg string) { globalLogger.Error(msg) }

// DebugEvent returns a debug event on the global logger
func DebugEvent() *Event { return globalLogger.DebugEvent() }

// InfoEvent returns an info event on the global logger
func InfoEvent() *Event { return globalLogger.InfoEvent() }
