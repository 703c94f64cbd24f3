package modules

import "strings"

// dsaKeywords maps resume phrases to the DSA topics they evidence, in the
// order topics should appear before deduplication.
var dsaKeywords = []struct {
	keyword string
	topic   string
}{
	{"arrays", "Arrays"},
	{"strings", "Strings"},
	{"hash table", "Hash Tables"},
	{"hash tables", "Hash Tables"},
	{"map", "Hash Tables"},
	{"maps", "Hash Tables"},
	{"linked list", "Linked List"},
	{"stack", "Stack"},
	{"queue", "Queue"},
	{"recursion", "Recursion"},
	{"two pointer", "Two Pointers"},
	{"two pointers", "Two Pointers"},
	{"sorting", "Sorting"},
	{"searching", "Searching"},
	{"graph", "Basic Graph"},
	{"graphs", "Basic Graph"},
	{"dynamic programming", "Dynamic Programming"},
	{"time complexity", "Time & Space Complexity"},
	{"space complexity", "Time & Space Complexity"},
	{"complexity", "Time & Space Complexity"},
	{"algorithm", "Algorithms"},
	{"algorithms", "Algorithms"},
	{"data structure", "Data Structures"},
	{"data structures", "Data Structures"},
	{"dsa", "Data Structures"},
}

// codingTopicNormalization folds topic variants into one spelling.
var codingTopicNormalization = map[string]string{
	"javascript":          "JavaScript",
	"js":                  "JavaScript",
	"typescript":          "TypeScript",
	"ts":                  "TypeScript",
	"python":              "Python",
	"java":                "Java",
	"c++":                 "C++",
	"c#":                  "C#",
	"sql":                 "SQL",
	"sql queries":         "SQL Queries",
	"sql query":           "SQL Queries",
	"database query":      "SQL Queries",
	"arrays":              "Arrays",
	"strings":             "Strings",
	"arrays & strings":    "Arrays and Strings",
	"arrays and strings":  "Arrays and Strings",
	"hash table":          "Hash Tables",
	"hash tables":         "Hash Tables",
	"maps":                "Hash Tables",
	"linked list":         "Linked List",
	"stack":               "Stack",
	"queue":               "Queue",
	"recursion":           "Recursion",
	"two pointer":         "Two Pointers",
	"two pointers":        "Two Pointers",
	"sorting":             "Sorting",
	"searching":           "Searching",
	"graph":               "Basic Graph",
	"graphs":              "Basic Graph",
	"dynamic programming": "Dynamic Programming",
	"time complexity":     "Time & Space Complexity",
	"space complexity":    "Time & Space Complexity",
	"complexity":          "Time & Space Complexity",
}

// CodingTopics extracts only the DSA and query topics the resume explicitly
// evidences. UI topics (React, Hooks, CSS) never appear here; they belong to
// the technical interview module.
func (s *Synthesizer) CodingTopics(skillList []string, lower string) []string {
	var topics []string

	for _, entry := range dsaKeywords {
		if strings.Contains(lower, entry.keyword) {
			topics = append(topics, entry.topic)
		}
	}

	// JavaScript Logic only when JavaScript shows up in a programming
	// context rather than pure UI work
	hasJS := strings.Contains(lower, "javascript")
	for _, skill := range skillList {
		skillLower := strings.ToLower(skill)
		if strings.Contains(skillLower, "javascript") || strings.Contains(skillLower, "js") {
			hasJS = true
			break
		}
	}
	if hasJS && containsAnyTerm(lower, "logic", "algorithm", "problem solving", "programming", "function", "variable") {
		topics = append(topics, "JavaScript Logic")
	}

	if containsAnyTerm(lower, "sql", "sql query", "database query", "query", "database") {
		topics = append(topics, "SQL Queries")
	}

	// Normalize and dedupe preserving order
	seen := make(map[string]struct{})
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		topicLower := strings.ToLower(topic)
		normalized := topic
		if mapped, ok := codingTopicNormalization[topicLower]; ok {
			normalized = mapped
		}
		if strings.Contains(topicLower, "arrays") && strings.Contains(topicLower, "strings") {
			normalized = "Arrays and Strings"
		}
		key := strings.ToLower(normalized)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// difficultyLangs are the language names counted toward resume depth.
var difficultyLangs = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "php", "ruby", "swift", "kotlin", "c", "cpp",
}

// dsaIndicators mark explicit algorithm practice.
var dsaIndicators = []string{
	"algorithm", "data structure", "dsa", "data structures", "arrays", "strings",
	"hash table", "linked list", "stack", "queue", "recursion", "two pointer",
	"sorting", "searching", "graph", "dynamic programming", "complexity",
	"leetcode", "hackerrank", "codechef", "codeforces", "competitive programming",
}

// CodingDifficulty rates the recommended assessment difficulty from resume
// depth: language count, JS/React/API usage, explicit DSA mentions and
// project count, evaluated as an ordered cascade.
func (s *Synthesizer) CodingDifficulty(lower string, projectCount int) string {
	langCount := 0
	for _, lang := range difficultyLangs {
		if strings.Contains(lower, lang) {
			langCount++
		}
	}

	hasBasicOnly := containsAnyTerm(lower, "html", "css") && langCount <= 1
	hasJS := strings.Contains(lower, "javascript") || strings.Contains(lower, "js")
	hasJSReactAPI := hasJS && strings.Contains(lower, "react") &&
		(strings.Contains(lower, "api") || strings.Contains(lower, "rest"))
	hasDSA := containsAnyTerm(lower, dsaIndicators...)

	switch {
	case hasBasicOnly && !hasJS && !hasDSA:
		return "Beginner"
	case hasJSReactAPI && !hasDSA:
		return "Easy to Medium"
	case hasDSA:
		if projectCount >= 3 && langCount >= 2 {
			return "Medium to Hard"
		}
		return "Easy to Medium"
	case langCount >= 2 && projectCount >= 2:
		return "Easy to Medium"
	case langCount == 1 && projectCount >= 1:
		return "Beginner to Easy"
	default:
		return "Beginner"
	}
}

// platformLangs gate platform recommendations on a detected language.
var platformLangs = []string{
	"javascript", "python", "java", "c++", "c", "cpp", "c#", "go", "rust", "php", "ruby", "swift", "kotlin", "typescript",
}

// platformMentions adds explicitly named platforms on top of the baseline.
var platformMentions = []struct {
	keyword string
	name    string
}{
	{"leetcode", "LeetCode"},
	{"hackerrank", "HackerRank"},
	{"codesignal", "CodeSignal"},
	{"codechef", "CodeChef"},
	{"codeforces", "Codeforces"},
	{"codewars", "Codewars"},
	{"geeksforgeeks", "GeeksforGeeks"},
	{"pramp", "Pramp"},
	{"interviewbit", "InterviewBit"},
	{"topcoder", "TopCoder"},
	{"atcoder", "AtCoder"},
	{"spoj", "SPOJ"},
}

// CodingPlatforms recommends practice platforms: none without a detected
// programming language, otherwise a standard baseline plus any platforms the
// resume names.
func (s *Synthesizer) CodingPlatforms(lower string) []string {
	detected := false
	for _, lang := range platformLangs {
		if strings.Contains(lower, lang) {
			detected = true
			break
		}
	}
	if !detected {
		return []string{}
	}

	platforms := []string{"LeetCode", "HackerRank", "CodeSignal", "CodeChef"}
	for _, mention := range platformMentions {
		if strings.Contains(lower, mention.keyword) && !containsString(platforms, mention.name) {
			platforms = append(platforms, mention.name)
		}
	}
	return platforms
}

func containsAnyTerm(lower string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
