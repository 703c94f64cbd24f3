package modules

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// starActionVerbs are checked in order against project summaries; the first
// hit becomes the Action talking point.
var starActionVerbs = []string{"developed", "created", "built", "designed", "implemented", "optimized", "improved"}

// challengeKeywords mark a sentence as a Situation candidate.
var challengeKeywords = []string{"challenge", "problem", "issue", "difficult", "complex"}

// STARPoints mines STAR-method talking points: a Situation and Action per
// project, Result snippets from achievement verbs, and one challenge
// sentence from the top of the resume. Deduplicated and capped.
func (s *Synthesizer) STARPoints(text string, projectList []types.Project) []string {
	var points []string

	for _, proj := range projectList {
		if proj.Name != "" {
			points = append(points, "Situation: Worked on "+proj.Name)
		}
		if proj.Summary != "" {
			summaryLower := strings.ToLower(proj.Summary)
			for _, verb := range starActionVerbs {
				if strings.Contains(summaryLower, verb) {
					points = append(points, fmt.Sprintf("Action: %s solution for %s", s.title.String(verb), proj.Name))
					break
				}
			}
		}
	}

	for _, re := range s.achievementPatterns {
		for _, m := range re.FindAllString(text, -1) {
			result := strings.TrimSpace(m)
			if len(result) < 100 {
				points = append(points, "Result: "+result)
			}
		}
	}

	sentences := strings.Split(text, ".")
	if len(sentences) > 20 {
		sentences = sentences[:20]
	}
	for _, sentence := range sentences {
		if len(sentence) <= 20 {
			continue
		}
		if containsAnyTerm(strings.ToLower(sentence), challengeKeywords...) {
			situation := strings.TrimSpace(sentence)
			if r := []rune(situation); len(r) > 80 {
				situation = string(r[:80])
			}
			points = append(points, "Situation: "+situation)
			break
		}
	}

	points = dedupeOrdered(points)
	if len(points) > s.maxStarPoints {
		points = points[:s.maxStarPoints]
	}
	if points == nil {
		points = []string{}
	}
	return points
}

// STARGuidance is the fixed explanation of the STAR method shown with the
// behavioral module.
func (s *Synthesizer) STARGuidance() map[string]string {
	return map[string]string{
		"Situation": "Set the context: Describe the situation or challenge you faced. Be specific about when and where this occurred.",
		"Task":      "Explain your responsibility: What was your role? What needed to be accomplished?",
		"Action":    "Detail your actions: What specific steps did you take? Focus on your contributions, not the team's.",
		"Result":    "Share the outcome: What was the result? Quantify achievements when possible (e.g., 'increased efficiency by 30%').",
	}
}
