package skills

import (
	"regexp"
	"strings"
)

// invalidStandaloneTerms are fragments that never count as skills on their own.
var invalidStandaloneTerms = map[string]struct{}{
	"component": {}, "components": {}, "integration": {}, "integrations": {}, "props": {}, "prop": {},
	"hook": {}, "hooks": {}, "state": {}, "context": {}, "reusability": {}, "responsive": {},
	"development": {}, "design": {}, "framework": {}, "library": {}, "libraries": {}, "tool": {}, "tools": {},
	"platform": {}, "platforms": {}, "system": {}, "systems": {}, "service": {}, "services": {},
	"using": {}, "with": {}, "built": {}, "developed": {}, "created": {}, "implemented": {}, "used": {},
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"jsx and props": {}, "jsx & props": {}, "jsx/props": {},
}

// classifyActionWords reject bare verbs that leak out of responsibility text.
var classifyActionWords = map[string]struct{}{
	"develop": {}, "create": {}, "build": {}, "design": {}, "implement": {}, "use": {}, "utilize": {},
	"worked": {}, "working": {}, "work": {}, "developed": {}, "development": {}, "created": {},
	"built": {}, "designed": {}, "implemented": {}, "using": {}, "used": {}, "utilized": {},
}

// techAcronyms whitelists short all-caps terms as core skills.
var techAcronyms = map[string]struct{}{
	"API": {}, "REST": {}, "SQL": {}, "HTML": {}, "CSS": {}, "JS": {}, "TS": {}, "JSX": {}, "TSX": {},
	"AWS": {}, "GCP": {}, "CI": {}, "CD": {}, "UI": {}, "UX": {}, "IDE": {}, "CLI": {}, "SDK": {},
	"HTTP": {}, "HTTPS": {}, "TCP": {}, "UDP": {}, "SSL": {}, "TLS": {}, "SSH": {}, "FTP": {},
	"JWT": {}, "JSON": {}, "XML": {}, "YAML": {}, "DOM": {},
	"BOM": {}, "AJAX": {}, "RPC": {}, "SOAP": {}, "CRUD": {}, "ORM": {}, "MVC": {}, "MVP": {},
}

var (
	domainCategoryWords = map[string]struct{}{"development": {}, "design": {}, "integration": {}, "management": {}, "architecture": {}}
	domainTechWords     = map[string]struct{}{"web": {}, "api": {}, "frontend": {}, "backend": {}, "mobile": {}, "responsive": {}, "component": {}}
)

// compileCorePatterns builds the allow-list families for core technical
// skills: languages, frameworks, databases, tools, protocols and standalone
// file extensions.
func compileCorePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		// Programming languages
		regexp.MustCompile(`^(python|java|javascript|typescript|c\+\+|c#|go|rust|php|ruby|swift|kotlin|scala|r|` +
			`matlab|sql|html|css|sass|scss|less|dart|perl|shell|bash|powershell)$`),
		// Frameworks and libraries
		regexp.MustCompile(`^(react|angular|vue|ember|svelte|next\.js|nuxt\.js|gatsby|remix|` +
			`node\.js|express|koa|nest|django|flask|fastapi|bottle|pyramid|` +
			`spring|spring boot|hibernate|struts|play|quarkus|micronaut|` +
			`laravel|symfony|codeigniter|cakephp|rails|sinatra|grails|` +
			`\.net|asp\.net|core|entity framework|wpf|winforms|` +
			`redux|mobx|zustand|recoil|jotai|` +
			`react query|tanstack query|apollo|relay|urql|` +
			`tailwind css|bootstrap|material-ui|ant design|chakra ui|styled-components|` +
			`emotion|css-in-js|stylus)$`),
		// Databases
		regexp.MustCompile(`^(mysql|postgresql|postgres|mongodb|redis|cassandra|couchdb|dynamodb|` +
			`oracle|sqlite|mariadb|neo4j|influxdb|elasticsearch|solr)$`),
		// Tools and platforms
		regexp.MustCompile(`^(git|github|gitlab|bitbucket|jira|confluence|trello|asana|` +
			`docker|kubernetes|k8s|jenkins|travis|circleci|github actions|gitlab ci|` +
			`aws|azure|gcp|heroku|vercel|netlify|firebase|supabase|` +
			`linux|unix|windows|macos|ios|android)$`),
		// Protocols and standards
		regexp.MustCompile(`^(http|https|rest|graphql|soap|grpc|websocket|tcp|udp|` +
			`oauth|jwt|ssl|tls|ssh|ftp|sftp)$`),
		// File extensions as standalone terms
		regexp.MustCompile(`^\.(js|ts|jsx|tsx|py|java|cpp|c|cs|php|rb|go|rs|swift|kt|scala|r|` +
			`sql|html|css|scss|sass|less|json|xml|yaml|yml|sh|bat|ps1)$`),
	}
}

// IsSoftSkill reports whether the term names a soft skill.
func (n *Normalizer) IsSoftSkill(term string) bool {
	return n.softSkill.MatchString(strings.ToLower(term))
}

// IsCore reports whether the term is a core technical skill: a language,
// framework, database, tool, platform or protocol. Generic words, verbs and
// domain concepts do not qualify.
func (n *Normalizer) IsCore(term string) bool {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return false
	}
	if n.IsSoftSkill(lower) {
		return false
	}
	if _, ok := invalidStandaloneTerms[lower]; ok {
		return false
	}
	if len(lower) < 2 || len(lower) > 50 {
		return false
	}
	if _, ok := classifyActionWords[lower]; ok {
		return false
	}

	for _, re := range n.corePatterns {
		if re.MatchString(lower) {
			return true
		}
	}

	trimmed := strings.TrimSpace(term)
	if n.acronym.MatchString(trimmed) {
		if _, ok := techAcronyms[trimmed]; ok {
			return true
		}
	}

	// Versioned names like "React 18" or "Python 3" classify by their base
	if n.versioned.MatchString(lower) {
		base := strings.TrimSpace(n.versionTail.ReplaceAllString(lower, ""))
		if base != lower {
			return n.IsCore(base)
		}
	}

	return false
}

// IsDomain reports whether the term is a domain competency such as
// "Web Development" or "API Integration" rather than a concrete technology.
func (n *Normalizer) IsDomain(term string) bool {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return false
	}
	if n.IsSoftSkill(lower) {
		return false
	}
	if len(lower) < 3 || len(lower) > 60 {
		return false
	}

	if n.domainPhrase.MatchString(lower) {
		return true
	}

	// Multi-word phrases that pair a tech word with a category word
	words := strings.Fields(lower)
	if len(words) >= 2 && len(words) <= 4 {
		hasCategory, hasTech := false, false
		for _, w := range words {
			if _, ok := domainCategoryWords[w]; ok {
				hasCategory = true
			}
			if _, ok := domainTechWords[w]; ok {
				hasTech = true
			}
		}
		if hasCategory && hasTech {
			return true
		}
	}

	return false
}
