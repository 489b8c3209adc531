// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied by MergeWithDefaults when neither file nor flags set a value.
const (
	DefaultPort         = 8080
	DefaultDayPlanLimit = 3
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	CatalogPath string `json:"catalog_path,omitempty"` // Catalog JSON file; empty uses the built-in library

	// Limits
	RecommendationLimit int `json:"recommendation_limit,omitempty"` // Max recommended workouts (0 = all)
	DayPlanLimit        int `json:"day_plan_limit,omitempty"`       // Max workouts suggested per day

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Log at debug level
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads DATABASE_URL, FITNESS_CATALOG_PATH and PORT.
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CatalogPath: os.Getenv("FITNESS_CATALOG_PATH"),
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = p
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.RecommendationLimit < 0 {
		return fmt.Errorf("config error: 'recommendation_limit' must be non-negative")
	}
	if c.DayPlanLimit < 0 {
		return fmt.Errorf("config error: 'day_plan_limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the package defaults for port and day plan limit.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}

	if result.RecommendationLimit == 0 {
		result.RecommendationLimit = defaults.RecommendationLimit
	}
	if result.DayPlanLimit == 0 {
		result.DayPlanLimit = defaults.DayPlanLimit
	}
	if result.DayPlanLimit == 0 {
		result.DayPlanLimit = DefaultDayPlanLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
