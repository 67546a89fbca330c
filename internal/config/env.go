package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Env is the configuration of the headless checker, read from the environment
type Env struct {
	MaxImageFileSize   int64  `env:"GARAGE_MAX_IMAGE_FILESIZE" envDefault:"5242880"`
	ConvertBackslashes bool   `env:"GARAGE_CONVERT_BACKSLASHES" envDefault:"true"`
	Platform           string `env:"GARAGE_PLATFORM"`
	Edition            string `env:"GARAGE_EDITION"`
}

// LoadEnv parses Env from the process environment
func LoadEnv() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.MaxImageFileSize <= 0 {
		return nil, fmt.Errorf("GARAGE_MAX_IMAGE_FILESIZE must be positive, got %d", cfg.MaxImageFileSize)
	}

	return cfg, nil
}

// Build returns the Build described by the environment. An empty platform
// falls back to goos and an empty edition falls back to edition.
func (e *Env) Build(goos, edition string) Build {
	if e.Platform != "" {
		goos = e.Platform
	}
	if e.Edition != "" {
		edition = e.Edition
	}
	return NewBuild(goos, edition)
}
