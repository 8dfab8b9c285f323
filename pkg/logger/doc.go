// Package logger builds slog loggers for the slugify command.
//
// It wraps log/slog with context-based attribute injection and optional
// Sentry reporting:
//
//	log := logger.New(os.Stderr, slog.LevelInfo, logger.FormatText, logger.RunIDExtractor)
//	ctx := logger.WithRunID(context.Background(), "5f0c...")
//	log.InfoContext(ctx, "charmap loaded", slog.String("file", "extra.yaml"))
//	// time=... level=INFO msg="charmap loaded" file=extra.yaml run_id=5f0c...
//
// # Sentry
//
// NewWithSentry adds a Sentry handler next to the local one when SentryConfig.DSN
// is set. Errors create Issues, warnings are stored as logs. Without a DSN, or
// when initialization fails, the logger silently degrades to local output only.
// Call Flush before the process exits.
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute from the context on every log call.
// ContextHandler applies extractors around any slog.Handler:
//
//	h := logger.NewContextHandler(slog.NewJSONHandler(os.Stdout, nil), logger.RunIDExtractor)
//	log := slog.New(h)
package logger
