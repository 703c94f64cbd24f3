package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.7, cfg.SubstringRatio)
	assert.Equal(t, 0.6, cfg.TokenOverlapRatio)
	assert.Equal(t, 50, cfg.MinTextLength)
	assert.Equal(t, 20, cfg.MaxSkills)
}

func TestLoadConfig_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	content := `{"max_skills": 10, "substring_ratio": 0.8}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MaxSkills)
	assert.Equal(t, 0.8, cfg.SubstringRatio)
	// Unset fields stay zero until merged
	assert.Equal(t, 0, cfg.MinTextLength)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_RejectsOutOfRangeRatios(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SubstringRatio = 1.5

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsZeroFields(t *testing.T) {
	partial := Config{MaxSkills: 5}
	merged := partial.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, 5, merged.MaxSkills)
	assert.Equal(t, 0.7, merged.SubstringRatio)
	assert.Equal(t, 50, merged.MinTextLength)
	assert.Equal(t, 25, merged.MaxCoreSkills)
	assert.Equal(t, 10, merged.MaxDomainSkills)
}

func TestMergeWithDefaults_KeepsExplicitValues(t *testing.T) {
	partial := Config{SubstringRatio: 0.9, TokenOverlapRatio: 0.5, MaxTopics: 3}
	merged := partial.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, 0.9, merged.SubstringRatio)
	assert.Equal(t, 0.5, merged.TokenOverlapRatio)
	assert.Equal(t, 3, merged.MaxTopics)
}
