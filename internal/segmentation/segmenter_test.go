package segmentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linesOf(text string) []string {
	return strings.Split(text, "\n")
}

func TestFind_ProjectsSection(t *testing.T) {
	s := NewSegmenter()
	lines := linesOf("John Doe\n\nProjects\nChat App\nBuilt with Go\n\nEducation\nBS Computer Science")

	section, ok := s.Find(lines, KindProjects)
	require.True(t, ok)

	assert.Equal(t, 2, section.Header)
	assert.Equal(t, 3, section.Start)
	assert.Equal(t, 6, section.End) // Education header closes the section
}

func TestFind_HeaderSynonyms(t *testing.T) {
	s := NewSegmenter()

	for _, header := range []string{"Projects", "PROJECT EXPERIENCE", "Personal Projects", "Notable Projects:"} {
		_, ok := s.Find(linesOf(header+"\nSomething"), KindProjects)
		assert.True(t, ok, "header %q should match", header)
	}
}

func TestFind_RunsToEndWithoutCloser(t *testing.T) {
	s := NewSegmenter()
	lines := linesOf("Internships\nAcme Corp\nBuilt internal tools")

	section, ok := s.Find(lines, KindInternship)
	require.True(t, ok)

	assert.Equal(t, 1, section.Start)
	assert.Equal(t, len(lines), section.End)
}

func TestFind_FirstSectionWins(t *testing.T) {
	s := NewSegmenter()
	lines := linesOf("Projects\nFirst entry\n\nEducation\nBS\n\nProjects\nSecond entry")

	section, ok := s.Find(lines, KindProjects)
	require.True(t, ok)

	assert.Equal(t, 0, section.Header)
	assert.Equal(t, 3, section.End)
}

func TestFind_NotFound(t *testing.T) {
	s := NewSegmenter()
	_, ok := s.Find(linesOf("Education\nBS Computer Science"), KindProjects)

	assert.False(t, ok)
}

func TestFind_TechnicalSkillsClosers(t *testing.T) {
	s := NewSegmenter()
	lines := linesOf("Technical Skills\nPython, Go\nDocker\nProjects\nChat App")

	section, ok := s.Find(lines, KindTechnicalSkills)
	require.True(t, ok)

	// Projects closes a skills section, though it does not close itself
	assert.Equal(t, 3, section.End)
}

func TestFind_BlankLinesDoNotClose(t *testing.T) {
	s := NewSegmenter()
	lines := linesOf("Projects\nChat App\n\n\nWeather Dashboard\nEducation")

	section, ok := s.Find(lines, KindProjects)
	require.True(t, ok)

	assert.Equal(t, 5, section.End)
}

func TestIsCloser_CaseInsensitiveWholeLine(t *testing.T) {
	s := NewSegmenter()

	assert.True(t, s.IsCloser(KindProjects, "EDUCATION"))
	assert.True(t, s.IsCloser(KindProjects, "Work Experience:"))
	assert.False(t, s.IsCloser(KindProjects, "Education in machine learning"))
}
