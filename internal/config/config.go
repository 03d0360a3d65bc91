// Package config loads YAML run configuration for batch generation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/puzzlegen/internal/generator"
)

// Config holds a full batch-generation run.
type Config struct {
	// OutputDir is where puzzle JSON records are written.
	OutputDir string `yaml:"output_dir"`

	// Solver selects the uniqueness-check backend: dlx or backtrack.
	Solver string `yaml:"solver"`

	// Workers bounds parallel generation. 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Seed is the base seed; each batch entry derives its own from it.
	// 0 means time-derived (non-reproducible).
	Seed int64 `yaml:"seed"`

	// MaxAttempts bounds regeneration after verification failures.
	MaxAttempts int `yaml:"max_attempts"`

	Batches []BatchSpec `yaml:"batches"`
}

// BatchSpec requests Count puzzles at one difficulty.
type BatchSpec struct {
	Difficulty string `yaml:"difficulty"`
	Count      int    `yaml:"count"`
	// TargetClues overrides the difficulty's default clue budget when
	// non-zero.
	TargetClues int `yaml:"target_clues"`
}

// Default returns a config that generates one medium puzzle into ./data.
func Default() *Config {
	return &Config{
		OutputDir:   "./data",
		Solver:      "dlx",
		MaxAttempts: generator.DefaultMaxAttempts,
		Batches:     []BatchSpec{{Difficulty: "medium", Count: 1}},
	}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects impossible batch requests before any work starts.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	switch c.Solver {
	case "", "dlx", "backtrack", "backtracking":
	default:
		return fmt.Errorf("unknown solver %q", c.Solver)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if len(c.Batches) == 0 {
		return fmt.Errorf("at least one batch is required")
	}
	for i, b := range c.Batches {
		if b.Count <= 0 {
			return fmt.Errorf("batch %d: count must be positive, got %d", i, b.Count)
		}
		if b.TargetClues != 0 &&
			(b.TargetClues < generator.MinTargetClues || b.TargetClues > generator.MaxTargetClues) {
			return fmt.Errorf("batch %d: %w: got %d", i, generator.ErrInvalidTargetClues, b.TargetClues)
		}
	}
	return nil
}
