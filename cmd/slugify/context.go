package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugify/internal/config"
	"github.com/dmitrymomot/slugify/pkg/logger"
	"github.com/dmitrymomot/slugify/pkg/slug"
)

// commandContext carries state shared by the root command and its children.
type commandContext struct {
	charmapFlags []string
	localeFlag   string

	cfg      config.Config
	log      *slog.Logger
	ctx      context.Context
	registry *slug.Registry

	// flush drains buffered Sentry events; swapped out in tests.
	flush func(timeout time.Duration) bool
}

func newCommandContext() *commandContext {
	return &commandContext{
		log:   logger.NewNope(),
		ctx:   context.Background(),
		flush: logger.Flush,
	}
}

// init loads configuration, builds the logger and a private registry with
// every configured charmap file applied.
func (c *commandContext) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	c.log = logger.NewWithSentry(cmd.ErrOrStderr(), level, format, cfg.Sentry, logger.RunIDExtractor)
	c.ctx = logger.WithRunID(cmd.Context(), uuid.NewString())

	c.registry = slug.NewRegistry()
	files := append(append([]string{}, cfg.Charmaps...), c.charmapFlags...)
	for _, name := range files {
		cm, err := slug.LoadCharmapFile(name)
		if err != nil {
			return c.fail("failed to load charmap", err, slog.String("file", name))
		}
		c.registry.Apply(cm)
		c.log.DebugContext(c.ctx, "charmap loaded",
			slog.String("file", name),
			slog.Int("chars", len(cm.Chars)),
			slog.Int("locales", len(cm.Locales)),
		)
	}
	return nil
}

// locale returns the --locale flag when set, the configured default otherwise.
func (c *commandContext) locale(cmd *cobra.Command) string {
	if cmd.Flags().Changed("locale") {
		return c.localeFlag
	}
	return c.cfg.Locale
}

// fail logs err and returns it for cobra to print.
func (c *commandContext) fail(msg string, err error, attrs ...any) error {
	c.log.ErrorContext(c.ctx, msg, append(attrs, slog.String("error", err.Error()))...)
	return fmt.Errorf("%s: %w", msg, err)
}

// close flushes pending Sentry events. A no-op without a DSN.
func (c *commandContext) close() {
	c.flush(2 * time.Second)
}

// execute runs cmd and closes ctx on every exit path.
// Cobra skips post-run hooks when a command fails.
func execute(cmd *cobra.Command, ctx *commandContext) error {
	defer ctx.close()
	return cmd.Execute()
}
