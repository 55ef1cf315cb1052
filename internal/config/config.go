// Package config loads the astar CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	// Workers bounds how many inputs are solved in parallel. Zero means one
	// per CPU.
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
	Puzzles PuzzlesConfig `yaml:"puzzles"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// PuzzlesConfig holds per-puzzle parameters.
type PuzzlesConfig struct {
	Crucible CrucibleConfig `yaml:"crucible"`
	Bytes    BytesConfig    `yaml:"bytes"`
}

// CrucibleConfig bounds the straight run of the ultra crucible.
type CrucibleConfig struct {
	UltraMin int `yaml:"ultra_min"`
	UltraMax int `yaml:"ultra_max"`
}

// BytesConfig sizes the memory space of the falling bytes puzzle.
type BytesConfig struct {
	Size   int `yaml:"size"`
	Fallen int `yaml:"fallen"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Workers: 0,
		Logging: LoggingConfig{Level: "info"},
		Puzzles: PuzzlesConfig{
			Crucible: CrucibleConfig{UltraMin: 4, UltraMax: 10},
			Bytes:    BytesConfig{Size: 71, Fallen: 1024},
		},
	}
}

// Load reads the configuration at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ASTAR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ASTAR_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("ASTAR_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	crucible := c.Puzzles.Crucible
	if crucible.UltraMin < 1 || crucible.UltraMax < crucible.UltraMin {
		return fmt.Errorf("crucible run bounds %d..%d are invalid", crucible.UltraMin, crucible.UltraMax)
	}
	bytes := c.Puzzles.Bytes
	if bytes.Size < 1 || bytes.Fallen < 0 {
		return fmt.Errorf("bytes size %d / fallen %d are invalid", bytes.Size, bytes.Fallen)
	}
	return nil
}
