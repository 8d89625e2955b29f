// Package logger configures the application's structured logging.
//
// It uses zerolog for all log output and provides the adapters needed
// to route pgx query tracing through the same logging pipeline.
package logger

import (
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/planora/backend/internal/config"
)

// New builds the application logger from config.
//
// In the local environment logs are written in a human-friendly console
// format; everywhere else they are emitted as JSON for log pipelines.
// Unknown level strings fall back to info.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Primary.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stdout)
	if cfg.Primary.IsLocal() {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return out.Level(level).With().
		Timestamp().
		Str("service", "planora").
		Str("env", cfg.Primary.Env).
		Logger()
}

// NewPgxLogger builds the logger used for SQL query tracing.
//
// Query logs are noisy, so they get their own console logger rather
// than sharing the main application stream.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level
// so SQL tracing verbosity follows the application log level.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
