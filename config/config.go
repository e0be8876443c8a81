// Package config loads, validates and saves the tool configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ortfero/swollencandle/candle"
)

// Config carries the defaults shared by the CLI commands.
type Config struct {
	Store     StoreConfig     `json:"store" yaml:"store"`
	Aggregate AggregateConfig `json:"aggregate" yaml:"aggregate"`
	Upscale   UpscaleConfig   `json:"upscale" yaml:"upscale"`
}

// StoreConfig locates the SQLite dataset store.
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// AggregateConfig holds the default bucket for trade aggregation.
type AggregateConfig struct {
	Period string `json:"period" yaml:"period"`
}

// UpscaleConfig holds the default target period for upscaling.
type UpscaleConfig struct {
	Period string `json:"period" yaml:"period"`
}

// LoadFromFile loads and validates configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if _, ok := candle.ParsePeriod(c.Aggregate.Period); !ok {
		return fmt.Errorf("unknown aggregate.period: %q", c.Aggregate.Period)
	}
	if _, ok := candle.ParsePeriod(c.Upscale.Period); !ok {
		return fmt.Errorf("unknown upscale.period: %q", c.Upscale.Period)
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Store:     StoreConfig{Path: "./candles.db"},
		Aggregate: AggregateConfig{Period: "minute"},
		Upscale:   UpscaleConfig{Period: "hour"},
	}
}
