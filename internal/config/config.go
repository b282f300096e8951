// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to defaults, and
// CLI flags win over both.
type Config struct {
	// Stores
	DatabaseURL    string `json:"database_url,omitempty"`
	VocabularyPath string `json:"vocabulary_path,omitempty"`
	BackupDir      string `json:"backup_dir,omitempty"`
	HistoryPath    string `json:"history_path,omitempty"`

	// Sampling
	SampleSize int `json:"sample_size,omitempty" validate:"gte=0"`

	// Merge thresholds
	MinCoverage         float64 `json:"min_coverage,omitempty" validate:"gte=0,lte=100"`
	MinJobCount         int     `json:"min_job_count,omitempty" validate:"gte=0"`
	MaxSkillsPerRun     int     `json:"max_skills_per_run,omitempty" validate:"gte=0"`
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty" validate:"gte=0,lte=1"`

	// Behavior
	DryRun  bool `json:"dry_run,omitempty"`
	Verbose bool `json:"verbose,omitempty"`
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		VocabularyPath:      "vocabulary.json",
		SampleSize:          500,
		MinCoverage:         2.0,
		MinJobCount:         10,
		MaxSkillsPerRun:     10,
		ConfidenceThreshold: 0.7,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks field ranges using the struct validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Bool fields are not merged: CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.VocabularyPath == "" {
		result.VocabularyPath = defaults.VocabularyPath
	}
	if result.BackupDir == "" {
		result.BackupDir = defaults.BackupDir
	}
	if result.HistoryPath == "" {
		result.HistoryPath = defaults.HistoryPath
	}

	if result.SampleSize == 0 {
		result.SampleSize = defaults.SampleSize
	}
	if result.MinCoverage == 0 {
		result.MinCoverage = defaults.MinCoverage
	}
	if result.MinJobCount == 0 {
		result.MinJobCount = defaults.MinJobCount
	}
	if result.MaxSkillsPerRun == 0 {
		result.MaxSkillsPerRun = defaults.MaxSkillsPerRun
	}
	if result.ConfidenceThreshold == 0 {
		result.ConfidenceThreshold = defaults.ConfidenceThreshold
	}

	return result
}
