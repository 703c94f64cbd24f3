package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// LevelFresher is the experience level assigned when no professional work
// history can be established.
const LevelFresher = "Fresher"

// levelRule inspects lowercased resume text and either decides the
// experience level or passes to the next rule.
type levelRule func(lower string) (string, bool)

var (
	fresherPhrase = regexp.MustCompile(`\b(fresher|fresh\s*graduate|no\s*experience|entry\s*level|recent\s*graduate|new\s*graduate)\b`)

	workSectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(work\s*experience|professional\s*experience|employment\s*history|work\s*history|career\s*history|experience\s*section)\b`),
		regexp.MustCompile(`\b(experience|employment|work\s*history)\s*:`),
	}

	employmentIndicators = []*regexp.Regexp{
		regexp.MustCompile(`\b(company|employer|organization|corporation|firm)\s*:`),
		regexp.MustCompile(`\b(worked\s*at|employed\s*at|position\s*at|role\s*at|job\s*at)\b`),
		regexp.MustCompile(`\b(software\s*engineer|developer|analyst|manager|engineer|consultant)\s*(?:at|in|with)\b`),
	}

	workYearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d+)\s*(?:years?|yrs?|y\.?)\s*(?:of\s*)?(?:work|professional|industry|relevant)\s*experience`),
		regexp.MustCompile(`(?:work|professional|industry|relevant)\s*experience[:\s]+(\d+)\s*(?:years?|yrs?)`),
		regexp.MustCompile(`\b(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?experience\s*(?:in|with|at)\s*(?:software|development|engineering|technology)`),
	}

	seniorRolePhrase = regexp.MustCompile(`\b(senior|lead|principal|architect|manager|director)\s+(?:software|engineer|developer|analyst|consultant)`)
)

func hasAnyMatch(patterns []*regexp.Regexp, lower string) bool {
	for _, re := range patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// buildLevelRules assembles the ordered cascade that maps resume text to an
// experience level. Only professional work history counts; projects and
// academic work never raise the level.
func buildLevelRules() []levelRule {
	return []levelRule{
		// Explicit fresher phrasing wins outright.
		func(lower string) (string, bool) {
			if fresherPhrase.MatchString(lower) {
				return LevelFresher, true
			}
			return "", false
		},
		// No employment section and no employment indicators means no
		// professional history to count.
		func(lower string) (string, bool) {
			if !hasAnyMatch(workSectionPatterns, lower) && !hasAnyMatch(employmentIndicators, lower) {
				return LevelFresher, true
			}
			return "", false
		},
		// Explicit year counts in a work-experience context; the maximum wins.
		func(lower string) (string, bool) {
			maxYears := 0
			for _, re := range workYearPatterns {
				for _, m := range re.FindAllStringSubmatch(lower, -1) {
					years, err := strconv.Atoi(m[1])
					if err != nil {
						continue
					}
					if years > maxYears {
						maxYears = years
					}
				}
			}
			if maxYears > 0 {
				return fmt.Sprintf("%dyrs", maxYears), true
			}
			return "", false
		},
		// Senior-role titles alongside employment context imply 5+ years.
		func(lower string) (string, bool) {
			if seniorRolePhrase.MatchString(lower) {
				return "5yrs+", true
			}
			return "", false
		},
	}
}

// ExperienceLevel runs the rule cascade over the resume text. The first rule
// that decides wins; the fallback is Fresher.
func (e *Extractor) ExperienceLevel(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range e.experienceRules {
		if level, ok := rule(lower); ok {
			return level
		}
	}
	return LevelFresher
}
