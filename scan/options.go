package scan

import (
	"io"
	"log/slog"
)

// Config is the immutable configuration of a walk.
type Config struct {
	Markers *MarkerSet
	Mode    Mode
}

// Option is a functional option for configuring a Walker.
type Option func(*Walker)

// WithLogger configures the walker with a custom logger.
// If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
