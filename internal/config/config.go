// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job             string `json:"job,omitempty"`              // Path to job description (txt or pdf)
	PersonalHistory string `json:"personal_history,omitempty"` // Path to resume/personal history (txt or pdf)
	OutputDir       string `json:"output_dir,omitempty"`       // Directory for generated letters

	// Candidate Info
	Name string `json:"name,omitempty"` // Candidate name, used for the PDF signature

	// Generation
	Provider string `json:"provider,omitempty"` // LLM provider: gemini, openai, deepseek
	Model    string `json:"model,omitempty"`    // Model override for the generation tier
	Tone     string `json:"tone,omitempty"`     // enthusiastic, confident, concise, or free text

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // LLM provider API key
	Research   bool   `json:"research,omitempty"`    // Enable web research for personalization
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// knownProviders are the providers the LLM client can construct
var knownProviders = map[string]bool{
	"":         true,
	"gemini":   true,
	"openai":   true,
	"deepseek": true,
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
	if !knownProviders[strings.ToLower(c.Provider)] {
		return fmt.Errorf("config error: unknown provider %q (expected gemini, openai, or deepseek)", c.Provider)
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.Job)
		}
	}
	if c.PersonalHistory != "" {
		if _, err := os.Stat(c.PersonalHistory); os.IsNotExist(err) {
			return fmt.Errorf("config error: personal history file not found: %s", c.PersonalHistory)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.PersonalHistory == "" {
		result.PersonalHistory = defaults.PersonalHistory
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Tone == "" {
		result.Tone = defaults.Tone
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
