package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/itemkit/itemkit/internal/config"
)

// Setup initializes the application's logging system from the resolved
// configuration. It creates a structured JSON logger writing to stdout, at
// debug level when the debug flag is set and info level otherwise, and
// installs it as the default logger.
func Setup(cfg config.ServerConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler).With(
		slog.String("service", "itemkit"),
		slog.String("environment", cfg.Environment),
	)

	slog.SetDefault(log)
	return log
}

// loggerContextKey is the context key under which a request-scoped logger is
// stored.
type loggerContextKey struct{}

// WithContext returns a context carrying the given logger.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContextOrDefault returns the logger stored in the context, or the given
// fallback when the context carries none.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
