package projects

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-profiler/internal/segmentation"
	"github.com/jonathan/resume-profiler/internal/types"
)

// bulletGlyphs are the markers recognized on description lines, including
// the unicode variants PDF extraction tends to produce.
var bulletGlyphs = []string{
	"-", "•", "*", "·", "▪", "▸", "▹", "▫", "◦", "‣", "⁃", "⁌", "⁍", "→", "➜", "➤", "○", "●",
}

// cleanActionVerbs flag an unmarked line as an implicit responsibility.
var cleanActionVerbs = map[string]struct{}{
	"developed": {}, "created": {}, "built": {}, "designed": {}, "implemented": {},
	"worked": {}, "collaborated": {}, "enhanced": {}, "practiced": {}, "gained": {},
	"integrated": {}, "used": {}, "managed": {}, "led": {}, "improved": {},
	"optimized": {}, "delivered": {}, "established": {}, "configured": {},
	"deployed": {}, "maintained": {}, "debugged": {}, "tested": {}, "wrote": {},
}

var (
	techPrefixIndicators  = []string{"tech", "technology", "technologies", "stack", "framework", "library", "libraries", "language", "languages"}
	toolsPrefixIndicators = []string{"tool", "tools", "software", "platform", "environment", "ide", "editor"}
)

// clean classifies the accumulated description lines into tech stack,
// responsibilities, tools and free text, then assembles the display summary.
// Returns false when nothing usable remains, which discards the project.
func (e *Extractor) clean(p types.Project, descLines []string, internship bool) (types.Project, bool) {
	var (
		techStack        []string
		tools            []string
		responsibilities []string
		otherLines       []string
	)

	for _, line := range descLines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if e.seg.IsCloser(segmentation.KindProjects, stripped) {
			continue
		}

		if internship && matchesAny(e.cleanMetadata, stripped) {
			continue
		}

		classified := false
		if prefix, content, ok := strings.Cut(stripped, ":"); ok {
			items, matched := e.classifyKeyValue(prefix, content, techPrefixIndicators, e.techTermRe, 5)
			if matched {
				techStack = append(techStack, items...)
				classified = true
			}
			items, matched = e.classifyKeyValue(prefix, content, toolsPrefixIndicators, e.toolTermRe, 3)
			if matched {
				tools = append(tools, items...)
				classified = true
			}
		}
		if classified {
			continue
		}

		if content, ok := stripBullet(stripped); ok {
			if content != "" {
				responsibilities = append(responsibilities, content)
			}
			continue
		}

		words := strings.Fields(stripped)
		switch {
		case len(words) > 0 && isActionVerb(words[0]) && len(stripped) > 20:
			// Bullet whose marker was lost in extraction
			responsibilities = append(responsibilities, stripped)
		case len(stripped) > 10 && !strings.HasSuffix(stripped, ".") && !strings.HasSuffix(stripped, ":") && !strings.HasSuffix(stripped, ";"):
			if len(words) <= 15 {
				responsibilities = append(responsibilities, stripped)
			} else {
				otherLines = append(otherLines, stripped)
			}
		default:
			otherLines = append(otherLines, stripped)
		}
	}

	var parts []string
	if len(techStack) > 0 {
		parts = append(parts, "Tech Stack: "+strings.Join(techStack, ", "))
	}
	for _, bullet := range responsibilities {
		parts = append(parts, "• "+bullet)
	}
	parts = append(parts, otherLines...)
	if len(tools) > 0 {
		parts = append(parts, "Tools: "+strings.Join(tools, ", "))
	}

	summary := strings.Join(parts, "\n")
	if summary == "" {
		return types.Project{}, false
	}

	p.Summary = summary
	p.TechStack = emptyIfNil(techStack)
	p.Responsibilities = emptyIfNil(responsibilities)
	p.Tools = emptyIfNil(tools)
	p.RawText = strings.Join(descLines, "\n")
	return p, true
}

// classifyKeyValue decides whether a "prefix: content" line is a tech-stack
// or tools declaration: the prefix must carry a matching indicator, the
// content must mention a recognized term and read like a short list.
func (e *Extractor) classifyKeyValue(prefix, content string, indicators []string, termRe *regexp.Regexp, minLen int) ([]string, bool) {
	prefixLower := strings.ToLower(strings.TrimSpace(prefix))
	content = strings.TrimSpace(content)

	hasIndicator := false
	for _, indicator := range indicators {
		if strings.Contains(prefixLower, indicator) {
			hasIndicator = true
			break
		}
	}
	if !hasIndicator || !termRe.MatchString(content) {
		return nil, false
	}

	listLike := strings.Contains(content, ",") || strings.Contains(content, "|") || len(strings.Fields(content)) <= 10
	if !listLike || len(content) <= minLen {
		return nil, false
	}

	var items []string
	for _, item := range e.listSeparators.Split(content, -1) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, len(items) > 0
}

// stripBullet removes a leading bullet glyph and reports whether one was found.
func stripBullet(stripped string) (string, bool) {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(stripped, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(stripped, glyph)), true
		}
	}
	return "", false
}

func isActionVerb(word string) bool {
	_, ok := cleanActionVerbs[strings.ToLower(word)]
	return ok
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
