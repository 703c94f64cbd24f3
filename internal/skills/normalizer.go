// Package skills normalizes and classifies technical skill mentions into
// deduplicated core and domain skill lists.
package skills

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// preferredForms maps canonical keys to their preferred display rendering.
var preferredForms = map[string]string{
	"git":         "Git",
	"github":      "GitHub",
	"gitlab":      "GitLab",
	"nodejs":      "Node.js",
	"react":       "React",
	"javascript":  "JavaScript",
	"typescript":  "TypeScript",
	"html":        "HTML",
	"css":         "CSS",
	"redux":       "Redux",
	"tailwindcss": "Tailwind CSS",
	"bootstrap":   "Bootstrap",
	"reactquery":  "React Query",
	"api":         "API",
	"rest":        "REST API",
	"graphql":     "GraphQL",
}

// Normalizer holds the compiled normalization and classification rules.
// Build it once with NewNormalizer; it is safe for concurrent use.
type Normalizer struct {
	maxCore   int
	maxDomain int

	title        cases.Caser
	nonWordSpace *regexp.Regexp
	whitespace   *regexp.Regexp
	acronym      *regexp.Regexp
	versioned    *regexp.Regexp
	versionTail  *regexp.Regexp
	softSkill    *regexp.Regexp
	corePatterns []*regexp.Regexp
	domainPhrase *regexp.Regexp
	multiWord    *regexp.Regexp
	separators   *regexp.Regexp
	edgePunct    *regexp.Regexp
	techMention  []*regexp.Regexp
	knownTech    *regexp.Regexp
	respTech     *regexp.Regexp
	respDomain   *regexp.Regexp
}

// NewNormalizer builds the skill rule set with the given output caps.
func NewNormalizer(maxCore, maxDomain int) *Normalizer {
	return &Normalizer{
		maxCore:      maxCore,
		maxDomain:    maxDomain,
		title:        cases.Title(language.English),
		nonWordSpace: regexp.MustCompile(`[^\w\s]`),
		whitespace:   regexp.MustCompile(`\s+`),
		acronym:      regexp.MustCompile(`^[A-Z]{2,5}$`),
		versioned:    regexp.MustCompile(`^[a-z]+\s*\d+`),
		versionTail:  regexp.MustCompile(`\s*\d+.*$`),
		softSkill: regexp.MustCompile(`\b(communication|teamwork|leadership|collaboration|problem solving|problem-solving|` +
			`adaptability|time management|presentation|interpersonal|negotiation|mentoring|` +
			`project management|agile|scrum|kanban|critical thinking|analytical thinking|` +
			`creativity|innovation|work ethic|professionalism|multitasking|organization|` +
			`attention to detail|detail-oriented|self-motivated|proactive|flexible|` +
			`customer service|client relations|stakeholder management|conflict resolution)\b`),
		corePatterns: compileCorePatterns(),
		domainPhrase: regexp.MustCompile(`\b(web development|frontend development|backend development|full stack development|` +
			`mobile development|ios development|android development|` +
			`api development|api integration|restful api|graphql api|` +
			`responsive design|web accessibility|ui/ux design|` +
			`component reusability|state management|` +
			`devops|ci/cd|cloud computing|microservices|serverless|` +
			`machine learning|data science|data analysis|nlp|computer vision)\b`),
		multiWord: regexp.MustCompile(`(?i)\b(Tailwind CSS|React Query|TanStack Query|React\.js|Node\.js|Next\.js|Nuxt\.js|` +
			`TypeScript|JavaScript|React Native|Material-UI|Ant Design|Chakra UI|` +
			`Styled Components|React Hooks|Redux Toolkit|GraphQL API|REST API|` +
			`Web Development|Frontend Development|Backend Development|Full Stack|` +
			`API Integration|Component Reusability|Responsive Design)\b`),
		separators: regexp.MustCompile(`[,|;:•·▪▸▹▫◦‣⁃⁌⁍→➜➤○●\-]`),
		edgePunct:  regexp.MustCompile(`^[^\w.]+|[^\w.]+$`),
		techMention: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:using|with|built with|developed with|technologies?|tech stack|stack|tools?)[:\s]+([^\n.!?]+)`),
			regexp.MustCompile(`(?i)tech\s+stack[:\s]+([^\n.!?]+)`),
			regexp.MustCompile(`(?i)technologies?[:\s]+([^\n.!?]+)`),
		},
		knownTech: regexp.MustCompile(`(?i)\b(React|Angular|Vue|Node\.?js|JavaScript|TypeScript|HTML|CSS|` +
			`Python|Java|C\+\+|C#|Go|Rust|PHP|Ruby|Swift|Kotlin|Scala|SQL|` +
			`Django|Flask|FastAPI|Express|Spring|Laravel|Rails|\.NET|Next\.js|Nuxt\.js|` +
			`MongoDB|PostgreSQL|MySQL|Redis|Docker|Kubernetes|AWS|Azure|GCP|` +
			`Git|GitHub|GitLab|REST|GraphQL|Redux|Tailwind CSS|Bootstrap|` +
			`React Query|TanStack Query)\b`),
		respTech: regexp.MustCompile(`(?i)\b(react|angular|vue|node\.?js|javascript|typescript|html|css|` +
			`python|java|c\+\+|c#|go|rust|php|ruby|swift|kotlin|scala|sql|` +
			`django|flask|fastapi|express|spring|laravel|rails|\.net|` +
			`mongodb|postgresql|mysql|redis|docker|kubernetes|aws|azure|gcp|` +
			`git|github|gitlab|rest|graphql|redux|tailwind css|bootstrap|` +
			`react query|tanstack query|apollo|relay|material-ui|ant design|` +
			`chakra ui|styled-components|sass|scss|less|webpack|vite|babel)\b`),
		respDomain: regexp.MustCompile(`(?i)\b(api\s+integration|component\s+reusability|responsive\s+design|` +
			`rest\s+api|graphql\s+api|web\s+development|frontend\s+development|` +
			`backend\s+development|full\s+stack\s+development)\b`),
	}
}

// CanonicalKey reduces a skill mention to the key used for deduplication:
// lowercased, punctuation stripped, whitespace removed, then folded through
// the alias rules (Node.js/Node/NODE.JS all become "nodejs").
func (n *Normalizer) CanonicalKey(term string) string {
	key := strings.ToLower(strings.TrimSpace(term))
	key = n.nonWordSpace.ReplaceAllString(key, "")
	key = n.whitespace.ReplaceAllString(key, "")
	if key == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(key, "github"):
		key = "github"
	case strings.HasPrefix(key, "node"):
		key = "nodejs"
	case strings.HasPrefix(key, "react"):
		key = "react"
	case key == "js":
		key = "javascript"
	case key == "ts":
		key = "typescript"
	}

	if strings.Contains(key, "tailwind") {
		key = "tailwindcss"
	}
	if strings.Contains(key, "reactquery") || strings.Contains(key, "tanstackquery") || strings.Contains(key, "tanstack") {
		key = "reactquery"
	} else if strings.Contains(key, "react") && strings.Contains(key, "query") {
		key = "reactquery"
	}

	return key
}

// DisplayForm renders a skill mention in its preferred form: known
// technologies get their standard spelling, acronyms and dotted names are
// preserved, multi-word terms are title-cased with CSS/API fixups.
func (n *Normalizer) DisplayForm(term string) string {
	clean := strings.TrimSpace(term)
	if clean == "" {
		return ""
	}

	if preferred, ok := preferredForms[n.CanonicalKey(clean)]; ok {
		return preferred
	}

	if n.acronym.MatchString(clean) {
		return clean
	}

	if strings.Contains(clean, ".") && clean[0] >= 'A' && clean[0] <= 'Z' {
		return clean
	}

	if strings.Contains(clean, " ") || strings.Contains(clean, "-") {
		lower := strings.ToLower(clean)
		if strings.Contains(lower, "css") {
			return strings.NewReplacer("css", "CSS", "Css", "CSS").Replace(clean)
		}
		if strings.Contains(lower, "api") {
			return strings.NewReplacer("api", "API", "Api", "API").Replace(clean)
		}
		return n.title.String(clean)
	}

	r := []rune(clean)
	return strings.ToUpper(string(r[:1])) + strings.ToLower(string(r[1:]))
}
