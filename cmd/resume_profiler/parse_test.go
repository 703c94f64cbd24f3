package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-profiler/internal/types"
)

func resetParseFlags() {
	parseFormat = ""
	parseOutDir = "."
	parseConfigFile = ""
	parseText = ""
	parseModules = false
	parseValidate = false
	parseVerbose = false
}

func TestRunParse_RequiresInput(t *testing.T) {
	resetParseFlags()

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must provide resume files or --text")
}

func TestRunParse_TextAndFilesConflict(t *testing.T) {
	resetParseFlags()
	parseText = "some resume text"

	err := runParse(nil, []string{"resume.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot combine --text with file arguments")
}

func TestRunParse_TextWritesProfile(t *testing.T) {
	resetParseFlags()
	parseOutDir = t.TempDir()
	parseText = `John Doe
john.doe@example.com

Work Experience
Software Engineer at Acme Corp
3 years of professional experience building web services with Python and Docker.`

	require.NoError(t, runParse(nil, nil))

	data, err := os.ReadFile(filepath.Join(parseOutDir, "resume.profile.json"))
	require.NoError(t, err)

	var parsed types.ParsedResume
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "John Doe", parsed.Name)
	assert.Equal(t, "3yrs", parsed.ExperienceLevel)
}

func TestRunParse_ShortTextFails(t *testing.T) {
	resetParseFlags()
	parseOutDir = t.TempDir()
	parseText = "too short"

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short to parse")
}

func TestRunParse_BadConfigPath(t *testing.T) {
	resetParseFlags()
	parseText = "irrelevant"
	parseConfigFile = "/nonexistent/config.json"

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRunParse_MissingFileError(t *testing.T) {
	resetParseFlags()
	parseOutDir = t.TempDir()
	parseFormat = "pdf"

	err := runParse(nil, []string{"/nonexistent/resume.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse /nonexistent/resume.pdf")
}
