package modules

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// skillToTopic maps skill substrings to interview topic names.
var skillToTopic = map[string]string{
	"python":           "Python",
	"java":             "Java",
	"javascript":       "JavaScript",
	"typescript":       "TypeScript",
	"react":            "React",
	"angular":          "Angular",
	"vue":              "Vue.js",
	"node.js":          "Node.js",
	"django":           "Django",
	"flask":            "Flask",
	"fastapi":          "FastAPI",
	"sql":              "SQL",
	"postgresql":       "PostgreSQL",
	"mysql":            "MySQL",
	"mongodb":          "MongoDB",
	"redis":            "Redis",
	"docker":           "Docker",
	"kubernetes":       "Kubernetes",
	"aws":              "AWS",
	"azure":            "Azure",
	"gcp":              "GCP",
	"git":              "Git",
	"machine learning": "Machine Learning",
	"ml":               "Machine Learning",
	"ai":               "Artificial Intelligence",
	"nlp":              "NLP",
	"data science":     "Data Science",
	"computer vision":  "Computer Vision",
	"tensorflow":       "TensorFlow",
	"pytorch":          "PyTorch",
}

// InterviewTopics derives the interview preparation topic list from skills,
// technology keywords and the raw text, sorted and capped.
func (s *Synthesizer) InterviewTopics(skillList, technologies []string, text string) []string {
	topics := make(map[string]struct{})
	lower := strings.ToLower(text)

	addFromTerm := func(term string) {
		termLower := strings.ToLower(term)
		for key, topic := range skillToTopic {
			if strings.Contains(termLower, key) {
				topics[topic] = struct{}{}
			}
		}
	}
	add := func(names ...string) {
		for _, name := range names {
			topics[name] = struct{}{}
		}
	}
	containsAny := func(terms ...string) bool {
		for _, t := range terms {
			if strings.Contains(lower, t) {
				return true
			}
		}
		return false
	}

	for _, skill := range skillList {
		addFromTerm(skill)
	}
	for _, tech := range technologies {
		addFromTerm(tech)
	}

	// Domain bundles
	if containsAny("machine learning", "ml", "ai", "data science", "nlp") {
		add("Machine Learning", "Statistics", "Linear Algebra", "Probability")
		if containsAny("nlp", "natural language") {
			add("NLP")
		}
		if containsAny("computer vision", "cv") {
			add("Computer Vision")
		}
	}
	if containsAny("web", "frontend", "backend", "full stack") {
		add("System Design", "REST APIs", "HTTP/HTTPS", "Web Security")
	}
	if containsAny("database", "sql", "postgresql", "mysql", "mongodb") {
		add("Database Design", "SQL Queries", "Indexing", "Transactions")
	}
	if containsAny("cloud", "aws", "azure", "gcp") {
		add("Cloud Architecture")
	}
	if containsAny("docker", "kubernetes", "devops") {
		add("DevOps", "CI/CD", "Containerization")
	}

	// Fundamentals always apply
	add("Data Structures", "Algorithms", "Problem Solving")

	if strings.Contains(lower, "git") {
		add("Git")
	}
	if containsAny("api", "rest", "graphql") {
		add("APIs")
	}

	out := make([]string, 0, len(topics))
	for topic := range topics {
		out = append(out, topic)
	}
	sort.Strings(out)
	if len(out) > s.maxTopics {
		out = out[:s.maxTopics]
	}
	return out
}

var (
	programmingKeywords = []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "php", "ruby",
		"swift", "kotlin", "scala", "r", "matlab", "sql", "html", "css", "sass", "less",
		"react", "angular", "vue", "node.js", "express", "django", "flask", "fastapi",
		"spring", "laravel", "rails", "asp.net", ".net", "next.js", "nuxt.js",
	}
	aiMLKeywords = []string{
		"machine learning", "ml", "ai", "artificial intelligence", "deep learning",
		"neural network", "tensorflow", "pytorch", "keras", "scikit-learn",
		"nlp", "natural language processing", "computer vision", "cv",
		"data science", "data analysis", "pandas", "numpy", "opencv",
	}
	toolsKeywords = []string{
		"docker", "kubernetes", "jenkins", "git", "github", "gitlab", "jira",
		"terraform", "ansible", "linux", "bash", "shell", "ci/cd",
		"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
		"aws", "azure", "gcp", "heroku", "vercel", "netlify",
	}
	softSkillsKeywords = []string{
		"leadership", "communication", "teamwork", "collaboration", "problem solving",
		"agile", "scrum", "project management", "mentoring", "presentation",
	}
)

// CategorizeSkills buckets the flat skills list into Programming, AI/ML and
// Tools, with Programming as the fallback bucket; soft skills come from the
// raw text rather than the skill list.
func (s *Synthesizer) CategorizeSkills(skillList []string, text string) types.SkillsSummary {
	lower := strings.ToLower(text)
	summary := types.SkillsSummary{
		Programming: []string{},
		AIML:        []string{},
		Tools:       []string{},
		SoftSkills:  []string{},
	}

	matches := func(keywords []string, skillLower string) bool {
		for _, kw := range keywords {
			if strings.Contains(skillLower, kw) || strings.Contains(kw, skillLower) {
				return true
			}
		}
		return false
	}

	for _, skill := range skillList {
		skillLower := strings.ToLower(skill)
		switch {
		case matches(programmingKeywords, skillLower):
			summary.Programming = append(summary.Programming, skill)
		case matches(aiMLKeywords, skillLower):
			summary.AIML = append(summary.AIML, skill)
		case matches(toolsKeywords, skillLower):
			summary.Tools = append(summary.Tools, skill)
		default:
			summary.Programming = append(summary.Programming, skill)
		}
	}

	for _, kw := range softSkillsKeywords {
		if strings.Contains(lower, kw) {
			formatted := s.title.String(kw)
			if !containsString(summary.SoftSkills, formatted) {
				summary.SoftSkills = append(summary.SoftSkills, formatted)
			}
		}
	}

	summary.Programming = dedupeOrdered(summary.Programming)
	summary.AIML = dedupeOrdered(summary.AIML)
	summary.Tools = dedupeOrdered(summary.Tools)
	summary.SoftSkills = dedupeOrdered(summary.SoftSkills)
	return summary
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func dedupeOrdered(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := list[:0]
	for _, item := range list {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
