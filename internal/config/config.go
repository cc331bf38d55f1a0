// Package config loads CLI defaults from a YAML file, using small structs
// with yaml tags.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults every peanoprove subcommand falls back to
// when a flag isn't given explicitly.
type Config struct {
	Database SearchDatabase `yaml:"database"`
	Search   SearchConfig   `yaml:"search"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SearchDatabase names the sqlite-backed knowledge-base file.
type SearchDatabase struct {
	Path string `yaml:"path"`
}

// SearchConfig holds the proof-search driver's default tuning knobs.
type SearchConfig struct {
	MaxRounds     int    `yaml:"max_rounds"`
	Timeout       string `yaml:"timeout"`
	EnableForward bool   `yaml:"enable_forward"`
}

// LoggingConfig controls the zap logger's verbosity.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration used when no file is
// present.
func Default() *Config {
	return &Config{
		Database: SearchDatabase{Path: "peanoprove.db"},
		Search: SearchConfig{
			MaxRounds:     20,
			Timeout:       "10s",
			EnableForward: true,
		},
		Logging: LoggingConfig{Verbose: false},
	}
}

// Load reads path as YAML, overlaying it onto Default(). A missing file
// is not an error; Load returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// SearchTimeout parses Search.Timeout, falling back to 10s on a bad
// value rather than failing the whole config load.
func (c *Config) SearchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
