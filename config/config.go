// Package config reads barrage settings from a YAML or JSON file.
package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/dhamidi/barrage/duration"
	"github.com/goccy/go-yaml"
)

// Config mirrors the flags of the run command. Zero values mean "not set".
type Config struct {
	Every  string   `yaml:"every"`
	Jitter *float64 `yaml:"jitter"`
	Count  int      `yaml:"count"`
	Data   any      `yaml:"data"`
	Log    Log      `yaml:"log"`
}

// Log configures where and how verbosely barrage logs.
type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

// Load reads and decodes the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes YAML (or JSON) and rejects unknown fields.
func Decode(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Every != "" {
		if _, err := duration.Parse(cfg.Every); err != nil {
			return nil, fmt.Errorf("every: %w", err)
		}
	}
	if cfg.Jitter != nil {
		if err := ValidateJitter(*cfg.Jitter); err != nil {
			return nil, fmt.Errorf("jitter: %w", err)
		}
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count: must not be negative, got %d", cfg.Count)
	}
	return &cfg, nil
}

// ValidateJitter rejects jitter factors that are negative or not finite.
func ValidateJitter(j float64) error {
	if math.IsNaN(j) || math.IsInf(j, 0) {
		return fmt.Errorf("must be a finite number, got %v", j)
	}
	if j < 0 {
		return fmt.Errorf("must not be negative, got %v", j)
	}
	return nil
}

// Interval returns the parsed Every field, or zero when it is unset.
func (c *Config) Interval() (time.Duration, error) {
	if c.Every == "" {
		return 0, nil
	}
	return duration.Parse(c.Every)
}
