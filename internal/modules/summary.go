package modules

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// ResumeSummary builds a one-paragraph candidate summary strictly from
// extracted fields; nothing is invented when data is missing.
func (s *Synthesizer) ResumeSummary(parsed *types.ParsedResume) string {
	var parts []string

	if parsed.Name != "" {
		parts = append(parts, parsed.Name+" is")
	} else {
		parts = append(parts, "This candidate is")
	}

	switch parsed.ExperienceLevel {
	case "", "Not specified", "Unknown":
		parts = append(parts, "a professional")
	case "Fresher":
		parts = append(parts, "a fresher")
	default:
		parts = append(parts, fmt.Sprintf("an experienced professional with %s of experience", parsed.ExperienceLevel))
	}

	if len(parsed.Keywords.JobTitles) > 0 {
		parts = append(parts, "specializing in "+strings.ToLower(parsed.Keywords.JobTitles[0]))
	}

	var expertise []string
	technologies := parsed.Keywords.Technologies
	if len(technologies) > 0 {
		top := technologies
		if len(top) > 3 {
			top = top[:3]
		}
		expertise = append(expertise, "proficient in "+strings.Join(top, ", "))
	} else if len(parsed.Skills) > 0 {
		top := parsed.Skills
		if len(top) > 3 {
			top = top[:3]
		}
		expertise = append(expertise, "skilled in "+strings.Join(top, ", "))
	}
	if len(expertise) > 0 {
		parts = append(parts, "with "+strings.Join(expertise, ", "))
	}

	var strengths []string
	if len(parsed.Skills) >= 10 {
		strengths = append(strengths, "strong technical skills")
	}
	if len(technologies) >= 5 {
		strengths = append(strengths, "diverse technology experience")
	}
	if len(parsed.Keywords.JobTitles) > 0 {
		strengths = append(strengths, "relevant industry experience")
	}
	if len(parsed.Keywords.Projects) > 0 {
		strengths = append(strengths, "project experience")
	}
	if len(strengths) > 0 {
		parts = append(parts, "demonstrating "+strings.Join(strengths, ", "))
	}

	return strings.Join(parts, " ") + "."
}
