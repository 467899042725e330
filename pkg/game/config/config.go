// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config holds runtime settings. Command-line flags may override some of them.
type Config struct {
	Renderer  string `env:"KICKDOOR_RENDERER" envDefault:"tui"`
	Seed      int64  `env:"KICKDOOR_SEED"` // 0 seeds from the clock
	Scenario  string `env:"KICKDOOR_SCENARIO"`
	LocaleDir string `env:"KICKDOOR_LOCALE_DIR" envDefault:"locales"`
	Language  string `env:"KICKDOOR_LANGUAGE" envDefault:"en_GB"`
	KickKey   string `env:"KICKDOOR_KICK_KEY" envDefault:"k"`
	LogLevel  string `env:"KICKDOOR_LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"KICKDOOR_LOG_FILE"` // empty logs to stderr

	// Extra kick disqualifiers, each a boolean expression over the door
	Disqualify []string `env:"KICKDOOR_DISQUALIFY" envSeparator:";"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags can't express.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.KickKey == "" {
		return fmt.Errorf("kick key must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
