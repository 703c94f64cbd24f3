// Package modules derives interview-preparation artifacts from a parsed
// resume: topic lists, the four interview modules, a quality rating and a
// summary paragraph.
package modules

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-profiler/internal/types"
)

// Synthesizer holds the lookup tables and compiled patterns for module
// synthesis. Build it once with NewSynthesizer; it is safe for concurrent use.
type Synthesizer struct {
	maxTopics     int
	maxStarPoints int
	maxHRSkills   int

	title               cases.Caser
	achievementPatterns []*regexp.Regexp
}

// NewSynthesizer builds the synthesis rule set with the given output caps.
func NewSynthesizer(maxTopics, maxStarPoints, maxHRSkills int) *Synthesizer {
	achievements := []*regexp.Regexp{
		regexp.MustCompile(`(?i)increased\s+[^.!?]{5,50}`),
		regexp.MustCompile(`(?i)reduced\s+[^.!?]{5,50}`),
		regexp.MustCompile(`(?i)improved\s+[^.!?]{5,50}`),
		regexp.MustCompile(`(?i)achieved\s+[^.!?]{5,50}`),
		regexp.MustCompile(`(?i)led\s+[^.!?]{5,50}`),
		regexp.MustCompile(`(?i)managed\s+[^.!?]{5,50}`),
	}

	return &Synthesizer{
		maxTopics:           maxTopics,
		maxStarPoints:       maxStarPoints,
		maxHRSkills:         maxHRSkills,
		title:               cases.Title(language.English),
		achievementPatterns: achievements,
	}
}

// EnhancedSummary assembles the derived summary layer for a parsed resume.
func (s *Synthesizer) EnhancedSummary(parsed *types.ParsedResume, projectList []types.Project, text string) *types.EnhancedSummary {
	return &types.EnhancedSummary{
		ResumeSummary:   s.ResumeSummary(parsed),
		SkillsSummary:   s.CategorizeSkills(parsed.Skills, text),
		ProjectsSummary: projectList,
		InterviewTopics: s.InterviewTopics(parsed.Skills, parsed.Keywords.Technologies, text),
		ResumeRating:    s.Rating(parsed, projectList),
	}
}

// Modules assembles the four interview modules from the parsed resume, the
// normalized skill breakdown and the extracted projects.
func (s *Synthesizer) Modules(parsed *types.ParsedResume, breakdown types.SkillBreakdown, projectList []types.Project, text string) types.InterviewModules {
	lower := strings.ToLower(text)

	allTechnical := append(append([]string{}, breakdown.CoreSkills...), breakdown.DomainSkills...)

	return types.InterviewModules{
		TechnicalInterview: types.TechnicalInterview{
			Description: fmt.Sprintf("Focus on %d core technical skills and domain expertise extracted from your resume.", len(allTechnical)),
			Skills:      allTechnical,
		},
		CodingTest: types.CodingTest{
			DifficultyLevel: s.CodingDifficulty(lower, len(projectList)),
			Platforms:       s.CodingPlatforms(lower),
			Topics:          s.CodingTopics(parsed.Skills, lower),
		},
		HRInterview: types.HRInterview{
			EvaluationPoints: s.HREvaluationPoints(),
			Skills:           s.HRSkills(lower, parsed.Keywords.JobTitles),
		},
		BehavioralInterview: types.BehavioralInterview{
			STARGuidance: s.STARGuidance(),
			STARPoints:   s.STARPoints(text, projectList),
		},
	}
}
