package entities

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// techVocabulary is the wider technology vocabulary used for the keywords
// block; it overlaps the skills vocabulary but leans toward tooling.
var techVocabulary = []string{
	// Frameworks
	"django", "flask", "fastapi", "react", "angular", "vue", "next.js", "nuxt.js",
	"spring", "express", "laravel", "rails", "asp.net", ".net",
	// Tools
	"docker", "kubernetes", "jenkins", "git", "github", "gitlab", "jira", "confluence",
	"terraform", "ansible", "puppet", "chef", "vagrant",
	// Databases
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
	"oracle", "sqlite", "dynamodb", "firebase", "supabase",
	// Cloud
	"aws", "azure", "gcp", "heroku", "vercel", "netlify",
	// Other technologies
	"rest api", "graphql", "microservices", "serverless", "lambda",
	"machine learning", "ai", "data science", "nlp", "computer vision",
	"blockchain", "web3", "ethereum", "solidity",
}

var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:software|web|mobile|full.?stack|front.?end|back.?end|devops|data|ml|ai)\s+(?:engineer|developer|architect|specialist)`),
	regexp.MustCompile(`(?i)(?:senior|junior|lead|principal)\s+(?:software|web|mobile|full.?stack|front.?end|back.?end|devops|data|ml|ai)\s+(?:engineer|developer|architect)`),
	regexp.MustCompile(`(?i)(?:python|java|javascript|react|angular|vue|node)\s+(?:developer|engineer)`),
	regexp.MustCompile(`(?i)data\s+(?:scientist|engineer|analyst)`),
	regexp.MustCompile(`(?i)(?:machine\s+learning|ml|ai)\s+(?:engineer|scientist)`),
	regexp.MustCompile(`(?i)devops\s+(?:engineer|specialist)`),
	regexp.MustCompile(`(?i)system\s+(?:administrator|admin|architect)`),
	regexp.MustCompile(`(?i)qa\s+(?:engineer|tester|analyst)`),
	regexp.MustCompile(`(?i)product\s+(?:manager|owner)`),
	regexp.MustCompile(`(?i)technical\s+(?:lead|manager|architect)`),
}

var projectMentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)project[:\s]+([A-Z][^.!?]{10,100})`),
	regexp.MustCompile(`(?i)built\s+([a-z\s]{10,80})\s+(?:using|with|in)`),
	regexp.MustCompile(`(?i)developed\s+([a-z\s]{10,80})\s+(?:using|with|in)`),
	regexp.MustCompile(`(?i)created\s+([a-z\s]{10,80})\s+(?:using|with|in)`),
}

// Keywords mines technology mentions and job titles from the resume text.
// The tools list is reserved for project-level extraction and stays empty
// here; the projects list is filled separately via ProjectMentions when the
// structured project extractor finds nothing.
func (e *Extractor) Keywords(text string) types.Keywords {
	lower := strings.ToLower(text)
	keywords := types.Keywords{
		Tools:        []string{},
		Technologies: []string{},
		JobTitles:    []string{},
		Projects:     []string{},
	}

	for _, tp := range e.techPatterns {
		if !tp.re.MatchString(lower) {
			continue
		}
		formatted := tp.skill
		if !strings.Contains(tp.skill, ".") {
			formatted = e.title.String(tp.skill)
		}
		if !contains(keywords.Technologies, formatted) {
			keywords.Technologies = append(keywords.Technologies, formatted)
		}
	}

	for _, re := range jobTitlePatterns {
		for _, match := range re.FindAllString(lower, -1) {
			title := e.title.String(match)
			if !contains(keywords.JobTitles, title) {
				keywords.JobTitles = append(keywords.JobTitles, title)
			}
		}
	}

	return keywords
}

// ProjectMentions is the naive fallback scan for project references, used
// when no structured Projects or Internship section yields anything.
func (e *Extractor) ProjectMentions(text string) []string {
	lower := strings.ToLower(text)
	mentions := []string{}

	for _, re := range projectMentionPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			mention := strings.TrimSpace(m[1])
			if r := []rune(mention); len(r) > 80 {
				mention = string(r[:80])
			}
			if mention != "" && !contains(mentions, mention) {
				mentions = append(mentions, mention)
			}
		}
	}
	return mentions
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
