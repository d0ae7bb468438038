// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"commission-engine/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Statement contains statement configuration
	Statement StatementConfig `json:"statement"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// PercentDecimals is the decimal-place count for percentages
	PercentDecimals int `json:"percent_decimals"`

	// ShowBreakdown shows the per-tier commission breakdown
	ShowBreakdown bool `json:"show_breakdown"`
}

// StatementConfig contains statement-related settings
type StatementConfig struct {
	// Currency is the default currency code
	Currency string `json:"currency"`

	// CurrencySymbol prefixes rendered amounts
	CurrencySymbol string `json:"currency_symbol"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat:   "cli",
			PercentDecimals: 1,
			ShowBreakdown:   true,
		},
		Statement: StatementConfig{
			Currency:       "USD",
			CurrencySymbol: "$",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
