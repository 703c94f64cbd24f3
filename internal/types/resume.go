// Package types defines the data model shared across the resume profiling pipeline.
package types

// Keywords groups the keyword lists mined from the raw resume text.
type Keywords struct {
	Tools        []string `json:"tools"`
	Technologies []string `json:"technologies"`
	JobTitles    []string `json:"job_titles"`
	Projects     []string `json:"projects"`
}

// Project is a single project entry extracted from a Projects or Internship section.
type Project struct {
	Name             string   `json:"name"`
	Summary          string   `json:"summary"`
	TechStack        []string `json:"tech_stack"`
	Responsibilities []string `json:"responsibilities"`
	Tools            []string `json:"tools"`
	RawText          string   `json:"raw_text"`
}

// SkillsSummary buckets extracted skills into interview-facing categories.
// The JSON keys are part of the serialized contract and keep their display form.
type SkillsSummary struct {
	Programming []string `json:"Programming"`
	AIML        []string `json:"AI/ML"`
	Tools       []string `json:"Tools"`
	SoftSkills  []string `json:"Soft Skills"`
}

// EnhancedSummary is the derived interview-preparation layer on top of the
// parsed resume. It is optional: synthesis failures degrade to a nil summary.
type EnhancedSummary struct {
	ResumeSummary   string        `json:"resume_summary"`
	SkillsSummary   SkillsSummary `json:"skills_summary"`
	ProjectsSummary []Project     `json:"projects_summary"`
	InterviewTopics []string      `json:"interview_topics"`
	ResumeRating    float64       `json:"resume_rating"`
}

// ParsedResume is the structured candidate profile produced by the pipeline.
type ParsedResume struct {
	Name            string           `json:"name,omitempty"`
	Email           string           `json:"email,omitempty"`
	Skills          []string         `json:"skills"`
	ExperienceLevel string           `json:"experience_level"`
	Keywords        Keywords         `json:"keywords"`
	TextLength      int              `json:"text_length"`
	Summary         *EnhancedSummary `json:"summary,omitempty"`
}

// SkillBreakdown separates normalized skills into core technical skills and
// broader domain competencies.
type SkillBreakdown struct {
	CoreSkills   []string `json:"core_skills"`
	DomainSkills []string `json:"domain_skills"`
}

// TechnicalInterview describes the technical interview module.
type TechnicalInterview struct {
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// CodingTest describes the coding assessment module.
type CodingTest struct {
	DifficultyLevel string   `json:"difficulty_level"`
	Platforms       []string `json:"platforms"`
	Topics          []string `json:"topics"`
}

// HRInterview describes the HR screening module.
type HRInterview struct {
	EvaluationPoints []string `json:"evaluation_points"`
	Skills           []string `json:"skills"`
}

// BehavioralInterview describes the behavioral interview module with
// STAR-method talking points derived from the candidate's projects.
type BehavioralInterview struct {
	STARGuidance map[string]string `json:"star_guidance"`
	STARPoints   []string          `json:"star_points"`
}

// InterviewModules is the per-module interview preparation breakdown.
type InterviewModules struct {
	TechnicalInterview  TechnicalInterview  `json:"technical_interview"`
	CodingTest          CodingTest          `json:"coding_test"`
	HRInterview         HRInterview         `json:"hr_interview"`
	BehavioralInterview BehavioralInterview `json:"behavioral_interview"`
}
