package projects

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-profiler/internal/segmentation"
)

func newTestExtractor() *Extractor {
	return NewExtractor(segmentation.NewSegmenter(), 0.7, 0.6)
}

func linesOf(text string) []string {
	return strings.Split(text, "\n")
}

func TestExtract_ProjectsSection(t *testing.T) {
	e := newTestExtractor()
	lines := linesOf(`Projects
Inventory Tracker
Technologies: React, Node.js, MongoDB
- Built REST endpoints for stock updates
- Designed the dashboard UI
- Tools: Git, Postman

Weather Dashboard
- Fetches forecasts from a public API

Education
BS Computer Science`)

	projects := e.Extract(lines)
	require.Len(t, projects, 2)

	first := projects[0]
	assert.Equal(t, "Inventory Tracker", first.Name)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, first.TechStack)
	assert.Equal(t, []string{"Git", "Postman"}, first.Tools)
	assert.Len(t, first.Responsibilities, 2)
	assert.Contains(t, first.Summary, "Tech Stack: React, Node.js, MongoDB")
	assert.Contains(t, first.Summary, "• Built REST endpoints for stock updates")
	assert.Contains(t, first.Summary, "Tools: Git, Postman")

	second := projects[1]
	assert.Equal(t, "Weather Dashboard", second.Name)
	assert.Equal(t, []string{"Fetches forecasts from a public API"}, second.Responsibilities)
}

func TestExtract_UnmarkedToolsLineEndsEntry(t *testing.T) {
	e := newTestExtractor()
	lines := linesOf(`Projects
Inventory Tracker
- Built REST endpoints for stock updates
Tools: Git, Postman

Education
BS Computer Science`)

	projects := e.Extract(lines)
	require.Len(t, projects, 1)

	// A bare "Tools:" line reads as a new title, so it closes the entry
	// above it and its contents never reach the tools list.
	first := projects[0]
	assert.Empty(t, first.Tools)
	assert.NotContains(t, first.Summary, "Postman")
	assert.Contains(t, first.Summary, "• Built REST endpoints for stock updates")
}

func TestExtract_InternshipImplicitName(t *testing.T) {
	e := newTestExtractor()
	lines := linesOf(`Internship Experience
Software Developer Intern
TechCorp (June 2023 - August 2023)
Developed a Pharma Quiz Web Application using React and Node.js
- Built quiz modules with scoring logic`)

	projects := e.Extract(lines)
	require.Len(t, projects, 1)

	proj := projects[0]
	assert.Equal(t, "Pharma Quiz Web Application", proj.Name)
	assert.Len(t, proj.Responsibilities, 2)
	// Role and date lines never leak into the summary
	assert.NotContains(t, proj.Summary, "Intern")
	assert.NotContains(t, proj.Summary, "TechCorp")
}

func TestExtract_TitleWithoutDescriptionDropped(t *testing.T) {
	e := newTestExtractor()
	lines := linesOf(`Projects
Chat Application
Education
BS Computer Science`)

	assert.Empty(t, e.Extract(lines))
}

func TestExtract_NoSections(t *testing.T) {
	e := newTestExtractor()
	assert.Empty(t, e.Extract(linesOf("John Doe\nWork Experience\nEngineer at Acme")))
}

func TestExtract_ExactDuplicateNames(t *testing.T) {
	e := newTestExtractor()
	lines := linesOf(`Projects
Chat Application
- Built real-time messaging

Chat Application
- Built message persistence`)

	projects := e.Extract(lines)
	require.Len(t, projects, 1)
	assert.Contains(t, projects[0].Summary, "real-time messaging")
}

func TestExtract_SimilarNamesDeduplicated(t *testing.T) {
	e := newTestExtractor()
	lines := linesOf(`Projects
Pharma Quiz App
- Built the quiz flow

Pharma Quiz Application
- Built the quiz flow again`)

	projects := e.Extract(lines)
	assert.Len(t, projects, 1)
}

func TestIsProjectTitle_RejectsActionVerbLines(t *testing.T) {
	e := newTestExtractor()

	assert.False(t, e.isProjectTitle("Developed a chat application using Go"))
	assert.False(t, e.isProjectTitle("Built internal tooling for deployments"))
}

func TestIsProjectTitle_RejectsRoleLines(t *testing.T) {
	e := newTestExtractor()

	assert.False(t, e.isProjectTitle("Software Developer Intern"))
	assert.False(t, e.isProjectTitle("Backend Engineer"))
}

func TestIsProjectTitle_AcceptsIndicatorAndShortPhrases(t *testing.T) {
	e := newTestExtractor()

	assert.True(t, e.isProjectTitle("Food Ordering App"))
	assert.True(t, e.isProjectTitle("Inventory Tracker"))
	assert.False(t, e.isProjectTitle("This is a long sentence that describes what happened during the project work."))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	out := truncate(strings.Repeat("é", 120), 100)

	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 100, utf8.RuneCountInString(out))
}

func TestNamesMatch_Thresholds(t *testing.T) {
	e := newTestExtractor()

	assert.True(t, e.namesMatch("chat app", "chat app"))
	// Substring containment with a high enough length ratio
	assert.True(t, e.namesMatch("weather dashboard", "the weather dashboard"))
	// Token overlap below threshold
	assert.False(t, e.namesMatch("chat app", "billing system"))
}
