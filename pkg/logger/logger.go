// Package logger builds the process-wide slog logger from configuration.
// Output goes to the configured log file when one is set, otherwise to
// stderr, in text or JSON format.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"customers-backend/pkg/config"
)

// New creates the service logger. The returned closer is a no-op when
// logging to stderr.
func New(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	var handler slog.Handler
	switch cfg.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(out, nil)
	default:
		handler = slog.NewTextHandler(out, nil)
	}

	return slog.New(handler).With(slog.String("service", "customers")), closer, nil
}
