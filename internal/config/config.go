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
	CV        string `json:"cv,omitempty"`        // Path to CV text file
	Job       string `json:"job,omitempty"`       // Path to job context JSON file
	Keywords  string `json:"keywords,omitempty"`  // Path to priority keywords JSON file
	Reference string `json:"reference,omitempty"` // Path to the unedited source record used for grounding

	// Behavior
	APIKey          string  `json:"api_key,omitempty"`          // Gemini API key
	Verbose         bool    `json:"verbose,omitempty"`          // Print detailed debug information
	MatchThreshold  float64 `json:"match_threshold,omitempty"`  // Minimum combined score for a requirement match (0.0-1.0)
	GradeThreshold  float64 `json:"grade_threshold,omitempty"`  // Composite score required to pass (0.0-10.0)
	SkipImprovement bool    `json:"skip_improvement,omitempty"` // Stop after grading, never revise
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
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("config error: 'match_threshold' must be between 0.0 and 1.0")
	}
	if c.GradeThreshold < 0 || c.GradeThreshold > 10 {
		return fmt.Errorf("config error: 'grade_threshold' must be between 0.0 and 10.0")
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{"cv": c.CV, "job": c.Job, "keywords": c.Keywords, "reference": c.Reference} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Reference == "" {
		result.Reference = defaults.Reference
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Float fields: use default if zero
	if result.MatchThreshold == 0 {
		result.MatchThreshold = defaults.MatchThreshold
	}
	if result.GradeThreshold == 0 {
		result.GradeThreshold = defaults.GradeThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
