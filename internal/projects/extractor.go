// Package projects extracts structured project entries from Projects and
// Internship sections of a resume.
package projects

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-profiler/internal/segmentation"
	"github.com/jonathan/resume-profiler/internal/types"
)

// titleIndicators mark a line as a plausible project title.
var titleIndicators = []string{
	"app", "application", "system", "platform", "project", "web", "mobile",
	"quiz", "ordering", "food", "pharma", "game", "dashboard", "portal",
	"website", "site", "tool", "service", "api",
}

// titleActionVerbs disqualify a line as a title when one opens it; such
// lines are descriptions.
var titleActionVerbs = map[string]struct{}{
	"developed": {}, "created": {}, "built": {}, "designed": {}, "implemented": {},
	"worked": {}, "collaborated": {}, "enhanced": {}, "practiced": {}, "gained": {},
	"integrated": {}, "used": {}, "tools": {}, "tech": {}, "demonstrated": {}, "managed": {},
}

// roleWords disqualify a line as a project title anywhere they appear.
var roleWords = map[string]struct{}{
	"intern": {}, "developer": {}, "engineer": {}, "specialist": {},
	"analyst": {}, "architect": {}, "manager": {},
}

// implicitNameEndings are the nouns an implicit internship project name is
// trimmed back to, checked in order.
var implicitNameEndings = []string{
	"web application", "web app", "application", "app", "system", "platform", "project",
}

// implicitIndicators and implicitRoleWords gate the implicit-name path.
var implicitIndicators = []string{
	"app", "application", "quiz", "ordering", "food", "pharma", "web", "system", "platform",
}

var implicitRoleWords = []string{"intern", "developer", "engineer", "specialist"}

// Extractor scans located sections for project entries. Build it once with
// NewExtractor; it is safe for concurrent use.
type Extractor struct {
	seg               *segmentation.Segmenter
	substringRatio    float64
	tokenOverlapRatio float64

	title          cases.Caser
	bulletPrefix   *regexp.Regexp
	roleTitleLine  []*regexp.Regexp
	metadataLine   []*regexp.Regexp
	implicitName   *regexp.Regexp
	startsUpper    *regexp.Regexp
	cleanMetadata  []*regexp.Regexp
	techTermRe     *regexp.Regexp
	toolTermRe     *regexp.Regexp
	listSeparators *regexp.Regexp
}

// NewExtractor builds the project extraction rule set. The two ratios control
// name-similarity deduplication: substringRatio is the minimum length ratio
// for one name containing the other, tokenOverlapRatio the minimum shared-token
// ratio.
func NewExtractor(seg *segmentation.Segmenter, substringRatio, tokenOverlapRatio float64) *Extractor {
	roleTitle := []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(frontend|backend|full.?stack|software|web|mobile|data|devops|qa|test)\s+(developer|engineer|intern|specialist|analyst|architect)`),
		regexp.MustCompile(`(?i)\s+(developer|engineer|intern|specialist|analyst|architect)\s*[-–]`),
	}
	metadata := []*regexp.Regexp{
		regexp.MustCompile(`\([^)]*\d{4}[^)]*\)`),
		regexp.MustCompile(`(?i)^(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}`),
		regexp.MustCompile(`(?i)organization[:\s]+`),
		regexp.MustCompile(`(?i)company[:\s]+`),
		regexp.MustCompile(`(?i)employer[:\s]+`),
	}

	return &Extractor{
		seg:               seg,
		substringRatio:    substringRatio,
		tokenOverlapRatio: tokenOverlapRatio,
		title:             cases.Title(language.English),
		bulletPrefix:      regexp.MustCompile(`^\s*[-•*·]\s*`),
		roleTitleLine:     roleTitle,
		metadataLine:      metadata,
		implicitName:      regexp.MustCompile(`(?i)(?:developed|created|built|designed)\s+(?:a\s+)?([A-Z][^.!?]*?)\s+(?:using|with|for)\s+`),
		startsUpper:       regexp.MustCompile(`^[A-Z]`),
		cleanMetadata: append([]*regexp.Regexp{
			regexp.MustCompile(`(?i)^(frontend|backend|full.?stack|software|web|mobile)\s+(developer|engineer|intern)`),
		}, append(metadata, regexp.MustCompile(`^[A-Z\s]{2,30}$`))...),
		techTermRe:     regexp.MustCompile(`(?i)\b(react|angular|vue|node|javascript|typescript|python|java|html|css|django|flask|fastapi|express|spring|laravel|rails|\.net|\.js|\.py|\.ts|\.jsx|\.tsx|api|rest|graphql|sql|mongodb|postgresql|mysql|redis|docker|kubernetes|aws|azure|gcp)\b`),
		toolTermRe:     regexp.MustCompile(`(?i)\b(git|github|gitlab|vscode|visual\s+studio|postman|jira|confluence|jenkins|terraform|ansible|puppet|chef|vagrant)\b`),
		listSeparators: regexp.MustCompile(`[,|]`),
	}
}

// Extract returns the deduplicated project entries found in the first
// Projects section and the first Internship section of the document.
// Projects without a usable description are dropped.
func (e *Extractor) Extract(lines []string) []types.Project {
	var found []types.Project

	if section, ok := e.seg.Find(lines, segmentation.KindProjects); ok {
		found = append(found, e.parseSection(lines[section.Start:section.End], false)...)
	}
	if section, ok := e.seg.Find(lines, segmentation.KindInternship); ok {
		found = append(found, e.parseSection(lines[section.Start:section.End], true)...)
	}

	return e.dedupe(found)
}

// parseSection runs the two-state title/description scan over section lines.
func (e *Extractor) parseSection(sectionLines []string, internship bool) []types.Project {
	var (
		sectionProjects []types.Project
		current         *types.Project
		descLines       []string
	)

	finalize := func() {
		if current != nil && len(descLines) > 0 {
			if cleaned, ok := e.clean(*current, descLines, internship); ok {
				sectionProjects = append(sectionProjects, cleaned)
			}
		}
		current = nil
		descLines = nil
	}

	for _, line := range sectionLines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			finalize()
			continue
		}

		isBullet := strings.HasPrefix(stripped, "-") || strings.HasPrefix(stripped, "•") ||
			strings.HasPrefix(stripped, "*") || strings.HasPrefix(stripped, "·")
		noBullet := strings.TrimSpace(e.bulletPrefix.ReplaceAllString(stripped, ""))

		if internship && (matchesAny(e.roleTitleLine, stripped) || matchesAny(e.metadataLine, stripped)) {
			continue
		}

		if !isBullet && e.isProjectTitle(noBullet) {
			finalize()
			current = &types.Project{Name: truncate(noBullet, 100)}
			descLines = nil
			continue
		}

		switch {
		case current != nil:
			descLines = append(descLines, stripped)
		case internship:
			if name, ok := e.implicitProjectName(noBullet); ok {
				current = &types.Project{Name: truncate(name, 100)}
				descLines = []string{stripped}
			}
		}
	}
	finalize()

	return sectionProjects
}

// isProjectTitle applies the title heuristics: a short capitalized phrase
// that neither opens with an action verb nor names a role, and either carries
// a project-indicator token or is a short phrase without terminal punctuation.
func (e *Extractor) isProjectTitle(noBullet string) bool {
	words := strings.Fields(noBullet)
	count := len(words)
	if count < 2 || count > 10 || !e.startsUpper.MatchString(noBullet) {
		return false
	}

	head := words
	if len(head) > 3 {
		head = head[:3]
	}
	for _, w := range head {
		if _, ok := titleActionVerbs[strings.ToLower(w)]; ok {
			return false
		}
	}
	for _, w := range words {
		if _, ok := roleWords[strings.ToLower(w)]; ok {
			return false
		}
	}

	lower := strings.ToLower(noBullet)
	for _, indicator := range titleIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return count <= 6 &&
		!strings.HasSuffix(noBullet, ".") && !strings.HasSuffix(noBullet, "!") && !strings.HasSuffix(noBullet, "?") &&
		!strings.Contains(noBullet, ":")
}

// implicitProjectName mines a project name out of an internship bullet such
// as "Developed a Pharma Quiz Web Application using React". The captured
// phrase is trimmed back to a known ending noun, or to six words when none
// matches, and is only accepted when it looks like a product rather than a role.
func (e *Extractor) implicitProjectName(noBullet string) (string, bool) {
	m := e.implicitName.FindStringSubmatch(noBullet)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(m[1])

	found := false
	lower := strings.ToLower(candidate)
	for _, ending := range implicitNameEndings {
		pos := strings.Index(lower, ending)
		if pos < 0 {
			continue
		}
		before := strings.Fields(candidate[:pos])
		if len(before) > 0 {
			candidate = strings.Join(before, " ") + " " + e.title.String(ending)
		} else {
			candidate = e.title.String(ending)
		}
		found = true
		break
	}
	if !found {
		words := strings.Fields(candidate)
		if len(words) >= 2 {
			if len(words) > 6 {
				words = words[:6]
			}
			candidate = strings.Join(words, " ")
		}
	}

	lower = strings.ToLower(candidate)
	hasIndicator := false
	for _, indicator := range implicitIndicators {
		if strings.Contains(lower, indicator) {
			hasIndicator = true
			break
		}
	}
	for _, role := range implicitRoleWords {
		if strings.Contains(lower, role) {
			return "", false
		}
	}
	if !hasIndicator || len(strings.Fields(candidate)) < 2 {
		return "", false
	}
	return candidate, true
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// truncate caps a string at max runes, never splitting a multibyte rune.
func truncate(s string, max int) string {
	if r := []rune(s); len(r) > max {
		return string(r[:max])
	}
	return s
}
