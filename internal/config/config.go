// Package config provides configuration loading and validation for the profiler.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents profiler configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to DefaultConfig.
type Config struct {
	// Similarity thresholds for project deduplication
	SubstringRatio    float64 `json:"substring_ratio,omitempty" validate:"gte=0,lte=1"`     // Length ratio for substring name matches
	TokenOverlapRatio float64 `json:"token_overlap_ratio,omitempty" validate:"gte=0,lte=1"` // Shared-token ratio for name matches

	// Extraction limits
	MinTextLength int `json:"min_text_length,omitempty" validate:"gte=0"` // Minimum viable characters after extraction
	MaxSkills     int `json:"max_skills,omitempty" validate:"gte=0"`      // Cap on flat skills list

	// Output limits
	MaxCoreSkills   int `json:"max_core_skills,omitempty" validate:"gte=0"`   // Cap on core technical skills
	MaxDomainSkills int `json:"max_domain_skills,omitempty" validate:"gte=0"` // Cap on domain competencies
	MaxTopics       int `json:"max_topics,omitempty" validate:"gte=0"`        // Cap on interview topics
	MaxStarPoints   int `json:"max_star_points,omitempty" validate:"gte=0"`   // Cap on behavioral STAR points
	MaxHRSkills     int `json:"max_hr_skills,omitempty" validate:"gte=0"`     // Cap on HR soft skills

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultConfig returns the configuration used when no file overrides are given.
func DefaultConfig() Config {
	return Config{
		SubstringRatio:    0.7,
		TokenOverlapRatio: 0.6,
		MinTextLength:     50,
		MaxSkills:         20,
		MaxCoreSkills:     25,
		MaxDomainSkills:   10,
		MaxTopics:         20,
		MaxStarPoints:     8,
		MaxHRSkills:       10,
	}
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
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values on top of DefaultConfig.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Float fields: use default if zero
	if result.SubstringRatio == 0 {
		result.SubstringRatio = defaults.SubstringRatio
	}
	if result.TokenOverlapRatio == 0 {
		result.TokenOverlapRatio = defaults.TokenOverlapRatio
	}

	// Int fields: use default if zero
	if result.MinTextLength == 0 {
		result.MinTextLength = defaults.MinTextLength
	}
	if result.MaxSkills == 0 {
		result.MaxSkills = defaults.MaxSkills
	}
	if result.MaxCoreSkills == 0 {
		result.MaxCoreSkills = defaults.MaxCoreSkills
	}
	if result.MaxDomainSkills == 0 {
		result.MaxDomainSkills = defaults.MaxDomainSkills
	}
	if result.MaxTopics == 0 {
		result.MaxTopics = defaults.MaxTopics
	}
	if result.MaxStarPoints == 0 {
		result.MaxStarPoints = defaults.MaxStarPoints
	}
	if result.MaxHRSkills == 0 {
		result.MaxHRSkills = defaults.MaxHRSkills
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
