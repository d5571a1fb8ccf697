// Package config loads application configuration: engine and explanation
// tuning from an optional YAML file, with environment variable overrides for
// the operational settings. Every knob has a documented default, so an empty
// or missing file is fully usable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ta-enginev1/internal/engine"
	"ta-enginev1/internal/explain"
)

// Config holds all application configuration.
type Config struct {
	Engine  engine.Options  `yaml:"engine"`
	Explain explain.Options `yaml:"explain"`

	// MetricsAddr enables the Prometheus /metrics server when non-empty.
	MetricsAddr string `yaml:"metrics_addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Engine:   engine.DefaultOptions(),
		Explain:  explain.DefaultOptions(),
		LogLevel: "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TAENGINE_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("TAENGINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Engine.Indicators.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
