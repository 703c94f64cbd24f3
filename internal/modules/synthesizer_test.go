package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-profiler/internal/types"
)

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(20, 8, 10)
}

func TestInterviewTopics_FromSkillsAndText(t *testing.T) {
	s := newTestSynthesizer()
	text := "built web apps with python, react and docker using git and rest apis"

	topics := s.InterviewTopics([]string{"Python", "React"}, []string{"Docker"}, text)

	assert.Contains(t, topics, "Python")
	assert.Contains(t, topics, "React")
	assert.Contains(t, topics, "Docker")
	assert.Contains(t, topics, "System Design")
	assert.Contains(t, topics, "DevOps")
	assert.Contains(t, topics, "Git")
	assert.Contains(t, topics, "APIs")
	// Fundamentals always apply
	assert.Contains(t, topics, "Data Structures")
	assert.Contains(t, topics, "Algorithms")
	assert.Contains(t, topics, "Problem Solving")
}

func TestInterviewTopics_SortedAndCapped(t *testing.T) {
	s := NewSynthesizer(5, 8, 10)
	topics := s.InterviewTopics([]string{"Python", "React", "Docker"}, nil, "web sql cloud docker machine learning")

	assert.Len(t, topics, 5)
	for i := 1; i < len(topics); i++ {
		assert.Less(t, topics[i-1], topics[i])
	}
}

func TestInterviewTopics_MinimalResume(t *testing.T) {
	s := newTestSynthesizer()
	topics := s.InterviewTopics(nil, nil, "brief note")

	assert.ElementsMatch(t, []string{"Data Structures", "Algorithms", "Problem Solving"}, topics)
}

func TestCategorizeSkills_Buckets(t *testing.T) {
	s := newTestSynthesizer()
	summary := s.CategorizeSkills([]string{"Python", "NLP", "Jenkins", "Quantum"}, "agile scrum teamwork culture")

	assert.Contains(t, summary.Programming, "Python")
	assert.Contains(t, summary.AIML, "NLP")
	assert.Contains(t, summary.Tools, "Jenkins")
	// Unknown skills default to Programming
	assert.Contains(t, summary.Programming, "Quantum")

	assert.Contains(t, summary.SoftSkills, "Teamwork")
	assert.Contains(t, summary.SoftSkills, "Agile")
	assert.Contains(t, summary.SoftSkills, "Scrum")
}

func TestCategorizeSkills_EmptyListsNotNil(t *testing.T) {
	s := newTestSynthesizer()
	summary := s.CategorizeSkills(nil, "")

	assert.NotNil(t, summary.Programming)
	assert.NotNil(t, summary.AIML)
	assert.NotNil(t, summary.Tools)
	assert.NotNil(t, summary.SoftSkills)
}

func TestRating_EmptyResume(t *testing.T) {
	s := newTestSynthesizer()
	rating := s.Rating(&types.ParsedResume{}, nil)

	assert.Equal(t, 0.0, rating)
}

func TestRating_CompleteResume(t *testing.T) {
	s := newTestSynthesizer()
	parsed := &types.ParsedResume{
		Name:            "John Doe",
		Email:           "john@example.com",
		Skills:          make([]string, 20),
		ExperienceLevel: "3yrs",
		Keywords:        types.Keywords{JobTitles: []string{"Software Engineer"}},
		TextLength:      2500,
	}
	projects := make([]types.Project, 5)

	rating := s.Rating(parsed, projects)

	// 0.25+0.25 contact, 1.5 skills, 1.0 projects, 0.5+0.3 length, 0.2 titles, 0.5 experience
	assert.InDelta(t, 4.5, rating, 0.001)
}

func TestRating_BoundedAndMonotonic(t *testing.T) {
	s := newTestSynthesizer()

	fresher := &types.ParsedResume{Name: "A B", ExperienceLevel: "Fresher", TextLength: 1200}
	experienced := &types.ParsedResume{Name: "A B", ExperienceLevel: "4yrs", TextLength: 1200}

	fresherRating := s.Rating(fresher, nil)
	experiencedRating := s.Rating(experienced, nil)

	assert.Greater(t, experiencedRating, fresherRating)
	assert.GreaterOrEqual(t, fresherRating, 0.0)
	assert.LessOrEqual(t, experiencedRating, 5.0)
}

func TestResumeSummary_NamedCandidate(t *testing.T) {
	s := newTestSynthesizer()
	parsed := &types.ParsedResume{
		Name:            "John Doe",
		ExperienceLevel: "Fresher",
		Skills:          []string{"Python", "React"},
		Keywords: types.Keywords{
			JobTitles:    []string{"Software Engineer"},
			Technologies: []string{"React", "Node.js", "Docker", "AWS"},
		},
	}

	summary := s.ResumeSummary(parsed)

	assert.Equal(t, "John Doe is a fresher specializing in software engineer "+
		"with proficient in React, Node.js, Docker demonstrating relevant industry experience.", summary)
}

func TestResumeSummary_AnonymousCandidate(t *testing.T) {
	s := newTestSynthesizer()
	summary := s.ResumeSummary(&types.ParsedResume{})

	assert.Equal(t, "This candidate is a professional.", summary)
}

func TestResumeSummary_ExperiencedCandidate(t *testing.T) {
	s := newTestSynthesizer()
	parsed := &types.ParsedResume{Name: "Jane Smith", ExperienceLevel: "5yrs+"}

	summary := s.ResumeSummary(parsed)

	assert.Contains(t, summary, "Jane Smith is an experienced professional with 5yrs+ of experience")
}

func TestEnhancedSummary_Assembled(t *testing.T) {
	s := newTestSynthesizer()
	parsed := &types.ParsedResume{
		Name:       "John Doe",
		Skills:     []string{"Python"},
		TextLength: 1500,
	}
	projects := []types.Project{{Name: "Chat App", Summary: "• Built messaging"}}

	summary := s.EnhancedSummary(parsed, projects, "python chat project")

	require.NotNil(t, summary)
	assert.NotEmpty(t, summary.ResumeSummary)
	assert.Equal(t, projects, summary.ProjectsSummary)
	assert.NotEmpty(t, summary.InterviewTopics)
	assert.Greater(t, summary.ResumeRating, 0.0)
}
