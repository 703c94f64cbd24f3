package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// orderedSkills is an insertion-ordered map keyed by canonical skill key.
// Insertion order decides which form survives a collision; the final output
// is sorted, so order never leaks into results.
type orderedSkills struct {
	keys  []string
	forms map[string]string
}

func newOrderedSkills() *orderedSkills {
	return &orderedSkills{forms: make(map[string]string)}
}

// add records a display form under its canonical key. On collision the
// longer or properly capitalized form wins.
func (o *orderedSkills) add(key, form string) {
	existing, ok := o.forms[key]
	if !ok {
		o.keys = append(o.keys, key)
		o.forms[key] = form
		return
	}
	if len(form) > len(existing) || (isUpperStart(form) && !isUpperStart(existing)) {
		o.forms[key] = form
	}
}

func (o *orderedSkills) values() []string {
	out := make([]string, 0, len(o.keys))
	for _, key := range o.keys {
		out = append(out, o.forms[key])
	}
	return out
}

func isUpperStart(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// Breakdown mines every skill source in a fixed order (Technical Skills
// section lines, project tech stacks and summaries, the global technologies
// keywords, the flat skills list, project responsibilities, and project
// tools) and returns the deduplicated core and domain skill lists,
// case-insensitively sorted and capped.
func (n *Normalizer) Breakdown(sectionLines []string, projectList []types.Project, technologies, flatSkills []string) types.SkillBreakdown {
	core := newOrderedSkills()
	domain := make(map[string]struct{})

	addTerm := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" {
			return
		}
		if n.IsCore(term) {
			n.addCore(core, term)
		} else if n.IsDomain(term) {
			n.addDomain(domain, term)
		}
	}

	// 1. Technical Skills section items
	for _, line := range sectionLines {
		n.mineSectionLine(line, core, domain, addTerm)
	}

	// 2. Project tech stacks and summary text
	for _, proj := range projectList {
		for _, tech := range proj.TechStack {
			addTerm(tech)
		}
		n.mineSummary(proj.Summary, core, domain, addTerm)
	}

	// 3. Global technology keywords
	for _, tech := range technologies {
		addTerm(tech)
	}

	// 4. Flat skills list
	for _, skill := range flatSkills {
		addTerm(skill)
	}

	// 5. Project responsibilities
	for _, proj := range projectList {
		for _, resp := range proj.Responsibilities {
			for _, m := range n.respTech.FindAllString(resp, -1) {
				if n.IsCore(m) {
					n.addCore(core, m)
				}
			}
			for _, m := range n.respDomain.FindAllString(resp, -1) {
				if n.IsDomain(m) {
					n.addDomain(domain, m)
				}
			}
		}
	}

	// 6. Project tools
	for _, proj := range projectList {
		for _, tool := range proj.Tools {
			if n.IsCore(strings.TrimSpace(tool)) {
				n.addCore(core, strings.TrimSpace(tool))
			}
		}
	}

	coreOut := core.values()
	sort.Slice(coreOut, func(i, j int) bool {
		return strings.ToLower(coreOut[i]) < strings.ToLower(coreOut[j])
	})
	if len(coreOut) > n.maxCore {
		coreOut = coreOut[:n.maxCore]
	}

	domainOut := make([]string, 0, len(domain))
	for form := range domain {
		domainOut = append(domainOut, form)
	}
	sort.Slice(domainOut, func(i, j int) bool {
		return strings.ToLower(domainOut[i]) < strings.ToLower(domainOut[j])
	})
	if len(domainOut) > n.maxDomain {
		domainOut = domainOut[:n.maxDomain]
	}

	return types.SkillBreakdown{CoreSkills: coreOut, DomainSkills: domainOut}
}

func (n *Normalizer) addCore(core *orderedSkills, term string) {
	key := n.CanonicalKey(term)
	if key == "" {
		return
	}
	if _, ok := invalidStandaloneTerms[key]; ok {
		return
	}
	core.add(key, n.DisplayForm(term))
}

func (n *Normalizer) addDomain(domain map[string]struct{}, term string) {
	key := n.CanonicalKey(term)
	if key == "" {
		return
	}
	if _, ok := invalidStandaloneTerms[key]; ok {
		return
	}
	domain[n.DisplayForm(term)] = struct{}{}
}

// mineSectionLine pulls skills out of one Technical Skills section line:
// multi-word technical terms first, then the remaining separator-delimited
// items, skipping fragments already covered by an extracted multi-word term.
func (n *Normalizer) mineSectionLine(line string, core *orderedSkills, domain map[string]struct{}, addTerm func(string)) {
	for _, m := range n.multiWord.FindAllString(line, -1) {
		addTerm(m)
	}

	for _, item := range n.separators.Split(line, -1) {
		item = strings.TrimSpace(n.edgePunct.ReplaceAllString(strings.TrimSpace(item), ""))
		if item == "" {
			continue
		}
		if n.coveredByMultiWord(item, core, domain) {
			continue
		}
		addTerm(item)
	}
}

// coveredByMultiWord reports whether an item is a fragment of an already
// extracted longer term ("CSS" inside "Tailwind CSS").
func (n *Normalizer) coveredByMultiWord(item string, core *orderedSkills, domain map[string]struct{}) bool {
	itemLower := strings.ToLower(item)
	for _, form := range core.forms {
		formLower := strings.ToLower(form)
		if itemLower != formLower && strings.Contains(formLower, itemLower) {
			return true
		}
	}
	for form := range domain {
		formLower := strings.ToLower(form)
		if itemLower != formLower && strings.Contains(formLower, itemLower) {
			return true
		}
	}
	return false
}

// mineSummary scans a project summary for tech-stack declarations and known
// technology names.
func (n *Normalizer) mineSummary(summary string, core *orderedSkills, domain map[string]struct{}, addTerm func(string)) {
	if summary == "" {
		return
	}

	for _, re := range n.techMention {
		for _, m := range re.FindAllStringSubmatch(summary, -1) {
			for _, item := range n.separators.Split(m[1], -1) {
				addTerm(item)
			}
		}
	}

	for _, m := range n.knownTech.FindAllString(summary, -1) {
		if n.IsCore(m) {
			n.addCore(core, m)
		}
	}
}
