// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the smarthire configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Data
	Dataset        string `json:"dataset,omitempty"`         // Path to the candidate dataset JSON
	ValidateSchema bool   `json:"validate_schema,omitempty"` // Validate the dataset against its schema on load

	// Team selection
	Strategy string `json:"strategy,omitempty"` // weighted or unique-triple
	Attempts int    `json:"attempts,omitempty"` // Weighted search attempts
	Seed     uint64 `json:"seed,omitempty"`     // Fixed random seed; 0 draws a random one

	// Server
	Addr           string   `json:"addr,omitempty"`             // Listen address, e.g. ":8080"
	LogLevel       string   `json:"log_level,omitempty"`        // debug, info, warn or error
	AllowedOrigins []string `json:"allowed_origins,omitempty"`  // CORS origins; empty allows any
	GoogleClientID string   `json:"google_client_id,omitempty"` // OAuth client id for Google sign-in
	Users          []User   `json:"users,omitempty"`            // Accounts allowed to sign in with a password
}

// User is an account that may sign in with email and password.
type User struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"password_hash"`
}

// Strategy names accepted in the config file.
var strategies = []string{"weighted", "unique-triple"}

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Attempts < 0 {
		return fmt.Errorf("config error: 'attempts' must be non-negative")
	}

	if c.Strategy != "" && !contains(strategies, c.Strategy) {
		return fmt.Errorf("config error: unknown strategy %q (want one of %s)", c.Strategy, strings.Join(strategies, ", "))
	}

	if c.Dataset != "" {
		if _, err := os.Stat(c.Dataset); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.Dataset)
		}
	}

	seen := make(map[string]bool)
	for i, u := range c.Users {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" {
			return fmt.Errorf("config error: users[%d] has no email", i)
		}
		if u.PasswordHash == "" {
			return fmt.Errorf("config error: user %s has no password_hash", u.Email)
		}
		if seen[email] {
			return fmt.Errorf("config error: duplicate user %s", u.Email)
		}
		seen[email] = true
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Dataset == "" {
		result.Dataset = defaults.Dataset
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.GoogleClientID == "" {
		result.GoogleClientID = defaults.GoogleClientID
	}

	if result.Attempts == 0 {
		result.Attempts = defaults.Attempts
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}
	if len(result.Users) == 0 {
		result.Users = defaults.Users
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
