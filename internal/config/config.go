// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"
	"strconv"

	"github.com/okian/fungo/internal/domain/baserunning"
	"github.com/okian/fungo/internal/domain/model"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RosterPath locates the YAML roster file.
	RosterPath string `koanf:"roster_path"`

	// NumGames sets how many games a lineup evaluation simulates.
	NumGames int `koanf:"num_games"`

	// InningsPerGame sets the number of offensive innings per game.
	InningsPerGame int `koanf:"innings_per_game"`

	// WorkerCount sets the number of lineup evaluation workers.
	WorkerCount int `koanf:"worker_count"`

	// Seed fixes the base random seed; 0 derives one from the clock.
	Seed int64 `koanf:"seed"`

	// MetricsAddr configures the Prometheus listen address, e.g. ":9090".
	// Empty disables the metrics endpoint.
	MetricsAddr string `koanf:"metrics_addr"`

	// ResultsDir is where game reports and sweep CSVs are written.
	ResultsDir string `koanf:"results_dir"`

	// DPAttemptProbabilityOnGO gates double-play attempts on ground outs
	// with a force in effect.
	DPAttemptProbabilityOnGO float64 `koanf:"dp_attempt_probability_on_go"`

	// DoublePlayRunnerOutWeights selects which forced runner is retired on a
	// converted double play. Keys are base indexes: "0" first, "1" second,
	// "2" third.
	DoublePlayRunnerOutWeights map[string]float64 `koanf:"double_play_runner_out_weights"`

	// FieldersChoiceOutWeights selects the out on a fielder's choice. Base
	// index keys as above, plus "batter" (or "-1") for the batter-runner.
	FieldersChoiceOutWeights map[string]float64 `koanf:"fielders_choice_out_weights"`
}

// New creates a Config using defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:                 "info",
		RosterPath:               "data/roster.yaml",
		NumGames:                 162,
		InningsPerGame:           9,
		WorkerCount:              runtime.NumCPU(),
		Seed:                     0,
		MetricsAddr:              "",
		ResultsDir:               "results",
		DPAttemptProbabilityOnGO: 0.5,
		DoublePlayRunnerOutWeights: map[string]float64{
			"0": 1.0,
		},
		FieldersChoiceOutWeights: map[string]float64{
			"batter": 1.0,
			"0":      1.0,
		},
	}
}

// Rules converts the weight maps into baserunning rules and validates them.
func (c *Config) Rules() (baserunning.Rules, error) {
	r := baserunning.Rules{
		DPAttemptProbability: c.DPAttemptProbabilityOnGO,
		DPRunnerOutWeights:   make(map[model.Base]float64, len(c.DoublePlayRunnerOutWeights)),
		FCOutWeights:         make(map[int]float64, len(c.FieldersChoiceOutWeights)),
	}
	for key, w := range c.DoublePlayRunnerOutWeights {
		b, err := parseBaseKey(key)
		if err != nil {
			return baserunning.Rules{}, err
		}
		if b == baserunning.BatterKey {
			return baserunning.Rules{}, wrapInvalidf("double play weights cannot target the batter")
		}
		r.DPRunnerOutWeights[model.Base(b)] = w
	}
	for key, w := range c.FieldersChoiceOutWeights {
		b, err := parseBaseKey(key)
		if err != nil {
			return baserunning.Rules{}, err
		}
		r.FCOutWeights[b] = w
	}
	if err := r.Validate(); err != nil {
		return baserunning.Rules{}, wrapInvalid(err)
	}
	return r, nil
}

// parseBaseKey accepts "0".."2" for bases and "batter" or "-1" for the
// batter-runner.
func parseBaseKey(key string) (int, error) {
	if key == "batter" {
		return baserunning.BatterKey, nil
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, wrapInvalidf("weight key %q is not a base index", key)
	}
	if n != baserunning.BatterKey && (n < int(model.First) || n > int(model.Third)) {
		return 0, wrapInvalidf("weight key %q is out of range", key)
	}
	return n, nil
}
