package cli

import (
	"log/slog"

	"github.com/aretw0/stategate/internal/logging"
)

// createLogger configures the application logger.
// In debug mode it always logs at debug level; quiet commands get a no-op logger.
func createLogger(level slog.Level, debug, quiet bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	if quiet {
		return logging.NewNop()
	}
	return logging.New(level)
}
