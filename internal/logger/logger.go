// Package logger configures the process-wide slog logger.
//
// Production gets JSON output for log collectors; development gets the
// human-readable text handler with debug enabled.
package logger

import (
	"log/slog"
	"os"

	"github.com/nouralabs/accounting/internal/config"
)

// Setup builds a slog.Logger from config and installs it as the default.
func Setup(cfg config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
