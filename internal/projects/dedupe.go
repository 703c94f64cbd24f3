package projects

import (
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// dedupe drops projects whose names are near-duplicates of ones already
// seen; the first occurrence always wins. Two names match when they are
// equal, when one contains the other and the length ratio clears
// substringRatio, or when their shared-token ratio clears tokenOverlapRatio.
func (e *Extractor) dedupe(found []types.Project) []types.Project {
	unique := make([]types.Project, 0, len(found))
	var seenNames []string

	for _, proj := range found {
		name := strings.TrimSpace(proj.Name)
		if name == "" || proj.Summary == "" {
			continue
		}

		nameLower := strings.ToLower(name)
		duplicate := false
		for _, seen := range seenNames {
			if e.namesMatch(nameLower, strings.ToLower(seen)) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		seenNames = append(seenNames, name)
		unique = append(unique, proj)
	}
	return unique
}

func (e *Extractor) namesMatch(a, b string) bool {
	if a == b {
		return true
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		if shorter > 0 && float64(shorter)/float64(longer) > e.substringRatio {
			return true
		}
	}

	return tokenOverlap(a, b) > e.tokenOverlapRatio
}

// tokenOverlap is the shared-token count divided by the larger token set.
func tokenOverlap(a, b string) float64 {
	aWords := tokenSet(a)
	bWords := tokenSet(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	shared := 0
	for w := range aWords {
		if _, ok := bWords[w]; ok {
			shared++
		}
	}
	larger := len(aWords)
	if len(bWords) > larger {
		larger = len(bWords)
	}
	return float64(shared) / float64(larger)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
