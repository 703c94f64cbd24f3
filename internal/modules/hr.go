package modules

import "strings"

// hrSkillGroups map an HR skill to the phrases that evidence it, in display order.
var hrSkillGroups = []struct {
	name     string
	patterns []string
}{
	{"Communication", []string{"communication", "communicate", "presentation", "presenting"}},
	{"Teamwork", []string{"team", "collaboration", "collaborate", "teamwork", "group"}},
	{"Leadership", []string{"lead", "leader", "leadership", "manage", "management", "mentor", "supervise"}},
	{"Problem Solving", []string{"problem solving", "problem-solve", "analytical", "analysis"}},
	{"Adaptability", []string{"adapt", "flexible", "agile", "scrum"}},
	{"Time Management", []string{"time management", "deadline", "prioritize"}},
}

// HRSkills extracts the soft skills the HR round should probe, from phrase
// evidence in the text and seniority markers in the job titles.
func (s *Synthesizer) HRSkills(lower string, jobTitles []string) []string {
	var hrSkills []string

	for _, group := range hrSkillGroups {
		if containsAnyTerm(lower, group.patterns...) {
			hrSkills = append(hrSkills, group.name)
		}
	}

	for _, title := range jobTitles {
		titleLower := strings.ToLower(title)
		if strings.Contains(titleLower, "lead") || strings.Contains(titleLower, "senior") || strings.Contains(titleLower, "manager") {
			if !containsString(hrSkills, "Leadership") {
				hrSkills = append(hrSkills, "Leadership")
			}
			break
		}
	}

	if len(hrSkills) >= 3 {
		hrSkills = append(hrSkills, "Strong interpersonal skills")
	}
	if containsAnyTerm(lower, "project", "deliver", "achieve") {
		hrSkills = append(hrSkills, "Project delivery experience")
	}

	hrSkills = dedupeOrdered(hrSkills)
	if len(hrSkills) > s.maxHRSkills {
		hrSkills = hrSkills[:s.maxHRSkills]
	}
	if hrSkills == nil {
		hrSkills = []string{}
	}
	return hrSkills
}

// HREvaluationPoints lists what HR screens evaluate regardless of resume.
func (s *Synthesizer) HREvaluationPoints() []string {
	return []string{
		"Communication skills and clarity of expression",
		"Cultural fit and alignment with company values",
		"Motivation and interest in the role",
		"Career goals and long-term aspirations",
		"Salary expectations and negotiation readiness",
		"Availability and notice period",
		"Team collaboration and interpersonal skills",
	}
}
