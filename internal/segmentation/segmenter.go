// Package segmentation locates resume sections by their header lines.
package segmentation

import (
	"regexp"
	"strings"
)

// Kind identifies a resume section the profiler knows how to locate.
type Kind string

const (
	KindProjects        Kind = "projects"
	KindInternship      Kind = "internship"
	KindTechnicalSkills Kind = "technical_skills"
)

// Section is a located section: the header line index plus the half-open
// content line range [Start, End).
type Section struct {
	Header int
	Start  int
	End    int
}

// sectionEndKeywords are major headers that terminate a Projects or
// Internship section when they appear on a line of their own.
var sectionEndKeywords = []string{
	"training and certification", "certification", "certifications", "training",
	"technical skills", "skills", "technical expertise",
	"education", "academic background", "qualifications",
	"work experience", "employment", "professional experience",
	"achievements", "awards", "honors",
	"languages", "language proficiency",
	"references", "contact", "personal information",
	"summary", "objective", "profile",
}

// skillsEndKeywords terminate a Technical Skills section.
var skillsEndKeywords = []string{
	"education", "experience", "projects", "certification", "training",
	"achievements", "awards", "languages", "references", "contact",
	"summary", "objective", "profile", "work experience", "employment",
}

// Segmenter locates known section kinds with compiled header and closer
// patterns. Build it once with NewSegmenter; it is safe for concurrent use.
type Segmenter struct {
	headers map[Kind]*regexp.Regexp
	closers map[Kind]*regexp.Regexp
}

// NewSegmenter compiles the header synonym families and closing-header sets
// for every section kind the profiler understands.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		headers: map[Kind]*regexp.Regexp{
			KindProjects:        regexp.MustCompile(`^(projects?|project\s+experience|personal\s+projects?|notable\s+projects?)[:\s]*$`),
			KindInternship:      regexp.MustCompile(`^(internship\s+experience|internships?)[:\s]*$`),
			KindTechnicalSkills: regexp.MustCompile(`^(technical\s+skills?|skills?|technical\s+expertise|technologies?|tech\s+stack)[:\s]*$`),
		},
		closers: map[Kind]*regexp.Regexp{
			KindProjects:        compileClosers(sectionEndKeywords),
			KindInternship:      compileClosers(sectionEndKeywords),
			KindTechnicalSkills: compileClosers(skillsEndKeywords),
		},
	}
}

func compileClosers(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`^(` + strings.Join(quoted, "|") + `)[:\s]*$`)
}

// Find locates the first section of the given kind. The content range runs
// from the line after the header to the first closing header, or to the end
// of the document when no closer follows. Later sections of the same kind
// are ignored.
func (s *Segmenter) Find(lines []string, kind Kind) (Section, bool) {
	header, ok := s.headers[kind]
	if !ok {
		return Section{}, false
	}
	for i, line := range lines {
		if !header.MatchString(strings.ToLower(strings.TrimSpace(line))) {
			continue
		}

		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				continue
			}
			if s.IsCloser(kind, trimmed) {
				end = j
				break
			}
		}
		return Section{Header: i, Start: i + 1, End: end}, true
	}

	return Section{}, false
}

// IsCloser reports whether a trimmed line is a closing header for the kind.
func (s *Segmenter) IsCloser(kind Kind, trimmed string) bool {
	closer, ok := s.closers[kind]
	if !ok {
		return false
	}
	return closer.MatchString(strings.ToLower(trimmed))
}
