package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: " warn ", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "warn+2", expected: slog.LevelWarn + 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := logger.ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := logger.ParseLevel("loud")
		require.ErrorIs(t, err, logger.ErrUnknownLevel)
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	require.ErrorIs(t, err, logger.ErrUnknownFormat)
}

func TestNewAddsRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo, logger.FormatJSON, logger.RunIDExtractor)

	ctx := logger.WithRunID(context.Background(), "run-1")
	log.InfoContext(ctx, "slugified", slog.String("locale", "de"))
	log.DebugContext(ctx, "filtered out")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "slugified", rec["msg"])
	assert.Equal(t, "run-1", rec["run_id"])
	assert.Equal(t, "de", rec["locale"])
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	t.Run("skips missing values and nil extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := logger.NewContextHandler(slog.NewJSONHandler(&buf, nil), nil, logger.RunIDExtractor)
		slog.New(h).InfoContext(context.Background(), "no run")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.NotContains(t, rec, "run_id")
	})

	t.Run("keeps extractors across WithAttrs and WithGroup", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, slog.LevelInfo, logger.FormatJSON, logger.RunIDExtractor).
			With(slog.String("cmd", "slugify")).
			WithGroup("req")

		log.InfoContext(logger.WithRunID(context.Background(), "run-2"), "grouped")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "slugify", rec["cmd"])
		group, ok := rec["req"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "run-2", group["run_id"])
	})
}

func TestNewWithSentryWithoutDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(&buf, slog.LevelWarn, logger.FormatText, logger.SentryConfig{})

	log.Info("hidden")
	log.Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
