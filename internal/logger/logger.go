package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls log level and output format.
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // console, json
	Output io.Writer // defaults to os.Stderr
}

type implLogger struct {
	zl zerolog.Logger
}

// New creates a console Logger writing to stderr at the given level.
func New(level string) Logger {
	return NewWithConfig(Config{Level: level, Format: "console"})
}

// NewWithConfig creates a Logger from cfg. Unknown levels fall back to info.
func NewWithConfig(cfg Config) Logger {
	level := parseLevel(cfg.Level)

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return &implLogger{
		zl: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *implLogger) with(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if id := RunIDFromContext(ctx); id != "" {
		e = e.Str("run_id", id)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx, l.zl.Debug()).Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx, l.zl.Info()).Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx, l.zl.Warn()).Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx, l.zl.Error()).Msgf(msg, args...)
}
