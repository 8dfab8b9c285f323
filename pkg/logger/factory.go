package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects how records are encoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat accepts "json" or "text", case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ParseLevel accepts slog level names such as "debug", "info", "warn", "error" or "warn+2".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLevel, err)
	}
	return level, nil
}

// NewHandler creates a JSON or text handler writing to w.
func NewHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatText {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// New creates a logger writing to w with optional context extractors.
func New(w io.Writer, level slog.Level, format Format, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewContextHandler(NewHandler(w, level, format), extractors...))
}
