package logger

import "log/slog"

// NewNope creates a no-op logger that discards all output.
// Library code falls back to it when no logger is supplied.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
