// Package config loads the device configuration. The MCU build compiles in
// Default(); the OS build reads an optional YAML file on top of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/awiooono/blebuttons/internal/radio"
)

// Config holds all device configuration.
type Config struct {
	DeviceName  string    `yaml:"device_name"`
	ServiceUUID string    `yaml:"service_uuid"`
	AddressMode string    `yaml:"address_mode"` // "rotating" or "stable"
	TickMillis  int       `yaml:"tick_ms"`
	Advertising AdvConfig `yaml:"advertising"`
	LogLevel    string    `yaml:"log_level"`
}

// AdvConfig bounds the advertising interval in milliseconds.
type AdvConfig struct {
	IntervalMinMillis uint32 `yaml:"interval_min_ms"`
	IntervalMaxMillis uint32 `yaml:"interval_max_ms"`
}

// DefaultConfigPath returns the default config file path for the OS build.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "blebuttons", "config.yaml")
}

// Default returns a Config matching the firmware defaults: rotating private
// address, 20 ms poll tick, fast advertising interval.
func Default() *Config {
	return &Config{
		DeviceName:  "blebuttons",
		ServiceUUID: radio.ServiceUUID,
		AddressMode: "rotating",
		TickMillis:  20,
		Advertising: AdvConfig{
			IntervalMinMillis: radio.FastIntervalMinMillis,
			IntervalMaxMillis: radio.FastIntervalMaxMillis,
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file. Missing fields are filled with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.DeviceName == "" {
		return fmt.Errorf("device_name must not be empty")
	}

	if c.ServiceUUID == "" {
		return fmt.Errorf("service_uuid must not be empty")
	}

	switch c.AddressMode {
	case "rotating", "stable":
	default:
		return fmt.Errorf("address_mode must be \"rotating\" or \"stable\", got %q", c.AddressMode)
	}

	if c.TickMillis <= 0 {
		return fmt.Errorf("tick_ms must be > 0")
	}

	if c.Advertising.IntervalMinMillis == 0 || c.Advertising.IntervalMaxMillis == 0 {
		return fmt.Errorf("advertising interval bounds must be > 0")
	}

	if c.Advertising.IntervalMinMillis > c.Advertising.IntervalMaxMillis {
		return fmt.Errorf("advertising.interval_min_ms %d exceeds interval_max_ms %d",
			c.Advertising.IntervalMinMillis, c.Advertising.IntervalMaxMillis)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}

// Mode returns the configured initial address mode.
func (c *Config) Mode() radio.AddressMode {
	if c.AddressMode == "stable" {
		return radio.StableIdentity
	}
	return radio.RotatingPrivate
}

// Tick returns the reconciliation loop period.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}
