// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume     string `json:"resume,omitempty"`     // Path to resume document (txt/pdf/docx)
	Job        string `json:"job,omitempty"`        // Path to job-description text file
	JobURL     string `json:"job_url,omitempty"`    // URL to fetch the job description from
	Vocabulary string `json:"vocabulary,omitempty"` // Path to vocabulary JSON (built-in when empty)

	// Behavior
	APIKey                 string `json:"api_key,omitempty"`                  // Gemini API key for the semantic scorer
	MergeOverlaps          bool   `json:"merge_overlaps,omitempty"`           // Merge overlapping date ranges
	Verbose                bool   `json:"verbose,omitempty"`                  // Print detailed progress information
	SemanticTimeoutSeconds int    `json:"semantic_timeout_seconds,omitempty"` // Timeout for the similarity lookup

	// Server
	Port int `json:"port,omitempty"` // HTTP port for serve mode
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.SemanticTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'semantic_timeout_seconds' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SemanticTimeoutSeconds == 0 {
		result.SemanticTimeoutSeconds = defaults.SemanticTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
