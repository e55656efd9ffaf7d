package logger

import (
	"io"
	"log/slog"

	"github.com/milk9111/wraith/config"
)

// Setup configures the global slog logger for the environment and writes
// to out.
func Setup(cfg *config.Config, out io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
