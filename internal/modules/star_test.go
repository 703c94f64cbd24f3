package modules

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-profiler/internal/types"
)

func TestSTARPoints_FromProjects(t *testing.T) {
	s := newTestSynthesizer()
	projects := []types.Project{{Name: "Chat App", Summary: "• Developed real-time messaging"}}

	points := s.STARPoints("", projects)

	assert.Contains(t, points, "Situation: Worked on Chat App")
	assert.Contains(t, points, "Action: Developed solution for Chat App")
}

func TestSTARPoints_ResultsFromAchievements(t *testing.T) {
	s := newTestSynthesizer()
	text := "Improved page load time by 40% across the product."

	points := s.STARPoints(text, nil)

	require.NotEmpty(t, points)
	assert.True(t, strings.HasPrefix(points[0], "Result: Improved page load time by 40%"))
}

func TestSTARPoints_ChallengeSentence(t *testing.T) {
	s := newTestSynthesizer()
	text := "Faced a difficult scaling problem when traffic doubled overnight. Resolved it with caching."

	points := s.STARPoints(text, nil)

	found := false
	for _, p := range points {
		if strings.HasPrefix(p, "Situation: ") && strings.Contains(p, "difficult scaling problem") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSTARPoints_MultibyteSituationTruncated(t *testing.T) {
	s := newTestSynthesizer()
	text := "We hit a difficult scaling problem " + strings.Repeat("ü", 100) + "."

	points := s.STARPoints(text, nil)

	require.Len(t, points, 1)
	assert.True(t, utf8.ValidString(points[0]))
	assert.Equal(t, len("Situation: ")+80, utf8.RuneCountInString(points[0]))
}

func TestSTARPoints_CappedAndNotNil(t *testing.T) {
	s := NewSynthesizer(20, 2, 10)
	projects := []types.Project{
		{Name: "Chat App", Summary: "• Developed messaging"},
		{Name: "Billing System", Summary: "• Built invoicing"},
	}

	points := s.STARPoints("", projects)
	assert.Len(t, points, 2)

	empty := s.STARPoints("", nil)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestSTARGuidance_FourStages(t *testing.T) {
	s := newTestSynthesizer()
	guidance := s.STARGuidance()

	require.Len(t, guidance, 4)
	for _, stage := range []string{"Situation", "Task", "Action", "Result"} {
		assert.NotEmpty(t, guidance[stage])
	}
}
