// Package config loads server configuration from an optional YAML file with
// environment variable overrides. Every field has a working default so the
// server starts with no file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "10s" parse directly.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Server holds HTTP server settings.
type Server struct {
	Addr              string   `yaml:"addr"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64    `yaml:"max_body_bytes"`
}

// RateLimit holds per-IP rate limiting settings.
type RateLimit struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// Metrics holds metrics settings.
type Metrics struct {
	RefreshInterval Duration `yaml:"refresh_interval"`
}

// Config is the root configuration.
type Config struct {
	Server    Server    `yaml:"server"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Metrics   Metrics   `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:              ":8080",
			ReadHeaderTimeout: Duration(10 * time.Second),
			ShutdownTimeout:   Duration(5 * time.Second),
			MaxBodyBytes:      1 << 20,
		},
		RateLimit: RateLimit{
			Enabled: true,
			RPS:     50,
			Burst:   100,
		},
		Metrics: Metrics{
			RefreshInterval: Duration(time.Minute),
		},
	}
}

// Load reads configuration from the file named by the CONFIG_FILE environment
// variable, if set, layered over the defaults. The ADDR environment variable
// overrides the listen address last.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}
