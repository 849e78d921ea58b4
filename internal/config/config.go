// Package config loads CLI settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/goliatone/go-answerfmt/pkg/layout"
)

// Config holds environment-driven defaults. Flags override every field.
type Config struct {
	Locale     string            `env:"ANSWERFMT_LOCALE" envDefault:"en-US"`
	Screen     layout.ScreenSize `env:"ANSWERFMT_SCREEN" envDefault:"normal"`
	ItemsetsDB string            `env:"ANSWERFMT_ITEMSETS_DB" envDefault:":memory:"`
	LogLevel   string            `env:"ANSWERFMT_LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Tag parses the configured locale.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(c.Locale))
	if err != nil {
		return language.Und, fmt.Errorf("config: locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
