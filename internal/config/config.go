// Package config loads slugify settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/slugify/pkg/logger"
)

// Config holds defaults for the command line. Flags override these values.
type Config struct {
	Replacement string   `env:"SLUGIFY_REPLACEMENT" envDefault:"-"`
	Locale      string   `env:"SLUGIFY_LOCALE"`
	Lower       bool     `env:"SLUGIFY_LOWER" envDefault:"false"`
	Strict      bool     `env:"SLUGIFY_STRICT" envDefault:"false"`
	Trim        bool     `env:"SLUGIFY_TRIM" envDefault:"true"`
	StripHTML   bool     `env:"SLUGIFY_STRIP_HTML" envDefault:"false"`
	Charmaps    []string `env:"SLUGIFY_CHARMAPS" envSeparator:","`

	LogLevel  string `env:"SLUGIFY_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"SLUGIFY_LOG_FORMAT" envDefault:"text"`

	Sentry logger.SentryConfig
}

// Load reads the given dotenv files (".env" when none are given) and then
// parses the environment. Missing dotenv files are skipped; variables already
// set in the environment win over dotenv values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %q: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
