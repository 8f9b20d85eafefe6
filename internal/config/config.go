// internal/config/config.go
//
// Ambient settings loaded from the environment.
// Responsibilities:
//   - Parse LOG_LEVEL (default "info") into Config.
//   - Resolve it to a zerolog level, falling back to info when unparseable.
//
// Nothing here changes scoring; the mode still comes from the input.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds settings that tune logging only.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level resolves LogLevel. ok is false when the value is not a known level,
// in which case info is returned.
func (c Config) Level() (lvl zerolog.Level, ok bool) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, false
	}
	return lvl, true
}
