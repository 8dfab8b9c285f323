package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID stores a run identifier in ctx for RunIDExtractor.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDExtractor adds a "run_id" attribute when ctx carries one.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(runIDKey{}).(string); ok && id != "" {
		return slog.String("run_id", id), true
	}
	return slog.Attr{}, false
}
