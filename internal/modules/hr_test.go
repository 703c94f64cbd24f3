package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHRSkills_FromPhraseEvidence(t *testing.T) {
	s := newTestSynthesizer()
	lower := "collaborated with the team to deliver projects on deadline"

	hrSkills := s.HRSkills(lower, nil)

	assert.Contains(t, hrSkills, "Teamwork")
	assert.Contains(t, hrSkills, "Time Management")
	assert.Contains(t, hrSkills, "Project delivery experience")
}

func TestHRSkills_LeadershipFromJobTitles(t *testing.T) {
	s := newTestSynthesizer()
	hrSkills := s.HRSkills("", []string{"Senior Software Engineer"})

	assert.Contains(t, hrSkills, "Leadership")
}

func TestHRSkills_InterpersonalAtThreeGroups(t *testing.T) {
	s := newTestSynthesizer()
	lower := "strong communication, teamwork and analytical skills"

	hrSkills := s.HRSkills(lower, nil)

	assert.Contains(t, hrSkills, "Communication")
	assert.Contains(t, hrSkills, "Teamwork")
	assert.Contains(t, hrSkills, "Problem Solving")
	assert.Contains(t, hrSkills, "Strong interpersonal skills")
}

func TestHRSkills_EmptyNotNil(t *testing.T) {
	s := newTestSynthesizer()
	hrSkills := s.HRSkills("", nil)

	assert.Empty(t, hrSkills)
	assert.NotNil(t, hrSkills)
}

func TestHRSkills_Capped(t *testing.T) {
	s := NewSynthesizer(20, 8, 2)
	lower := "communication team leadership analytical agile deadline project"

	hrSkills := s.HRSkills(lower, nil)

	assert.Len(t, hrSkills, 2)
}

func TestHREvaluationPoints_FixedList(t *testing.T) {
	s := newTestSynthesizer()
	points := s.HREvaluationPoints()

	assert.Len(t, points, 7)
	assert.Contains(t, points, "Communication skills and clarity of expression")
	assert.Contains(t, points, "Availability and notice period")
}
