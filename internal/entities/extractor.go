// Package entities extracts candidate-level facts from cleaned resume text:
// name, email, flat skills, experience level and keyword lists.
package entities

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// skillVocabulary is the whole-word skill vocabulary for the flat skills list.
var skillVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "php", "ruby",
	"swift", "kotlin", "scala", "r", "matlab", "sql", "html", "css", "sass", "less",
	// Frameworks and libraries
	"react", "angular", "vue", "node.js", "express", "django", "flask", "fastapi",
	"spring", "laravel", "rails", "asp.net", ".net", "next.js", "nuxt.js",
	// Databases
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
	"oracle", "sqlite", "dynamodb", "firebase", "supabase",
	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "ci/cd",
	"terraform", "ansible", "linux", "bash", "shell scripting",
	// Tools and others
	"github", "gitlab", "jira", "agile", "scrum", "rest api", "graphql",
	"microservices", "machine learning", "ai", "data science", "nlp", "computer vision",
}

// nameExcludedWords disqualify a candidate name line when any word matches.
var nameExcludedWords = map[string]struct{}{
	"email": {}, "phone": {}, "address": {}, "resume": {}, "cv": {},
}

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// Extractor holds the compiled vocabulary and patterns for entity extraction.
// Build it once with NewExtractor; it is safe for concurrent use.
type Extractor struct {
	title           cases.Caser
	skillPatterns   []skillPattern
	techPatterns    []skillPattern
	namePattern     *regexp.Regexp
	numericLine     *regexp.Regexp
	emailPattern    *regexp.Regexp
	experienceRules []levelRule
}

// NewExtractor compiles the extraction rule set.
func NewExtractor() *Extractor {
	e := &Extractor{
		title:        cases.Title(language.English),
		namePattern:  regexp.MustCompile(`^[A-Za-z\s.\-]+$`),
		numericLine:  regexp.MustCompile(`^[\d\s\-+()]+$`),
		emailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	}

	e.skillPatterns = make([]skillPattern, 0, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		e.skillPatterns = append(e.skillPatterns, skillPattern{
			skill: skill,
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`),
		})
	}

	e.techPatterns = make([]skillPattern, 0, len(techVocabulary))
	for _, keyword := range techVocabulary {
		e.techPatterns = append(e.techPatterns, skillPattern{
			skill: keyword,
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`),
		})
	}

	e.experienceRules = buildLevelRules()
	return e
}

// Name extracts the candidate name from the top of the resume. It scans the
// first 10 non-blank-ish lines for a short alphabetic line that is not a
// contact detail, and returns it title-cased. Returns "" when nothing looks
// like a name.
func (e *Extractor) Name(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 50 {
			continue
		}
		if !e.namePattern.MatchString(line) {
			continue
		}
		excluded := false
		for _, word := range strings.Fields(line) {
			if _, ok := nameExcludedWords[strings.ToLower(word)]; ok {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if strings.Contains(line, "@") || e.numericLine.MatchString(line) {
			continue
		}
		return e.title.String(line)
	}
	return ""
}

// Email extracts the first email address in the text, lowercased.
func (e *Extractor) Email(text string) string {
	return strings.ToLower(e.emailPattern.FindString(text))
}

// Skills extracts up to limit vocabulary skills present as whole words in the
// text, in vocabulary order. Dotted names keep an uppercase rendering; the
// rest are title-cased.
func (e *Extractor) Skills(text string, limit int) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, limit)
	seen := make(map[string]struct{})

	for _, sp := range e.skillPatterns {
		if !sp.re.MatchString(lower) {
			continue
		}
		formatted := e.formatSkill(sp.skill)
		if _, ok := seen[formatted]; ok {
			continue
		}
		found = append(found, formatted)
		seen[formatted] = struct{}{}
		if limit > 0 && len(found) >= limit {
			break
		}
	}
	return found
}

func (e *Extractor) formatSkill(skill string) string {
	if strings.Contains(skill, ".") {
		return strings.ToUpper(skill)
	}
	return e.title.String(skill)
}
