package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-profiler/internal/types"
)

func TestPrintParsedResume_Basic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(&types.ParsedResume{
		Name:            "John Doe",
		Email:           "john@example.com",
		ExperienceLevel: "3yrs",
		Skills:          []string{"Python", "React"},
		Keywords:        types.Keywords{Technologies: []string{"Docker"}},
		TextLength:      1400,
	})

	out := buf.String()
	assert.Contains(t, out, "PARSED RESUME")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "john@example.com")
	assert.Contains(t, out, "• Python")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintParsedResume_MissingContactMarked(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(&types.ParsedResume{ExperienceLevel: "Fresher"})

	assert.Contains(t, buf.String(), "(not found)")
}

func TestPrintParsedResume_NilNoOutput(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintParsedResume_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"}
	p.PrintParsedResume(&types.ParsedResume{Skills: skills})

	out := buf.String()
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "Seven")
}

func TestPrintEnhancedSummary_RatingAndProjects(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEnhancedSummary(&types.EnhancedSummary{
		ResumeRating: 3.75,
		ProjectsSummary: []types.Project{
			{Name: "Chat App", TechStack: []string{"Go", "Redis"}},
		},
		InterviewTopics: []string{"Algorithms"},
	})

	out := buf.String()
	assert.Contains(t, out, "ENHANCED SUMMARY")
	assert.Contains(t, out, "Rating: 3.75 / 5")
	assert.Contains(t, out, "Chat App [Go, Redis]")
	assert.Contains(t, out, "Algorithms")
}

func TestPrintInterviewModules_AllSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInterviewModules(&types.InterviewModules{
		TechnicalInterview:  types.TechnicalInterview{Skills: []string{"Python"}},
		CodingTest:          types.CodingTest{DifficultyLevel: "Easy to Medium", Topics: []string{"Arrays"}},
		HRInterview:         types.HRInterview{Skills: []string{"Teamwork"}},
		BehavioralInterview: types.BehavioralInterview{STARPoints: []string{"Situation: Worked on Chat App"}},
	})

	out := buf.String()
	assert.Contains(t, out, "INTERVIEW MODULES")
	assert.Contains(t, out, "Difficulty: Easy to Medium")
	assert.Contains(t, out, "Teamwork")
	assert.Contains(t, out, "Situation: Worked on Chat App")
}
