package logger

import (
	"io"
	"log/slog"

	"github.com/alkime/paramctl/internal/config"
)

// SetupLogger configures structured logging based on environment and
// installs it as the default logger.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	// Determine log level
	logLevel := slog.LevelInfo
	if cfg.Env == config.EnvDevelopment {
		logLevel = slog.LevelDebug
	}
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
