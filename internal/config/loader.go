package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if FUNGO_CONFIG is set
//  3. env (prefix FUNGO_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("FUNGO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: FUNGO_NUM_GAMES, FUNGO_WORKER_COUNT, ...
	// Map env keys like FUNGO_NUM_GAMES -> num_games (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("FUNGO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fungo_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.NumGames <= 0:
		return wrapInvalidf("num_games must be positive, got %d", c.NumGames)
	case c.InningsPerGame <= 0:
		return wrapInvalidf("innings_per_game must be positive, got %d", c.InningsPerGame)
	case c.WorkerCount <= 0:
		return wrapInvalidf("worker_count must be positive, got %d", c.WorkerCount)
	case c.RosterPath == "":
		return wrapInvalidf("roster_path must not be empty")
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}
