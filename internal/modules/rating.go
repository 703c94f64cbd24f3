package modules

import (
	"math"

	"github.com/jonathan/resume-profiler/internal/types"
)

// Rating scores resume quality on a 0-5 scale from additive factors:
// contact clarity, skill count, project count, length and structure, and
// established experience. Rounded to two decimals.
func (s *Synthesizer) Rating(parsed *types.ParsedResume, projectList []types.Project) float64 {
	score := 0.0

	// Clarity: name and email present
	if parsed.Name != "" {
		score += 0.25
	}
	if parsed.Email != "" {
		score += 0.25
	}

	// Skills: up to 1.5 for 15+ skills
	score += math.Min(float64(len(parsed.Skills))/15.0, 1.0) * 1.5

	// Projects: up to 1.0 for 5+ projects
	score += math.Min(float64(len(projectList))/5.0, 1.0) * 1.0

	// Completeness: length and recognizable structure
	if parsed.TextLength > 1000 {
		score += 0.5
	}
	if parsed.TextLength > 2000 {
		score += 0.3
	}
	if len(parsed.Keywords.JobTitles) > 0 {
		score += 0.2
	}

	// Experience: established history scores above fresher
	switch parsed.ExperienceLevel {
	case "", "Not specified", "Unknown":
	case "Fresher":
		score += 0.2
	default:
		score += 0.5
	}

	score = math.Min(math.Max(score, 0.0), 5.0)
	return math.Round(score*100) / 100
}
