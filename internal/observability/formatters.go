// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the parsed profile.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	name := parsed.Name
	if name == "" {
		name = "(not found)"
	}
	email := parsed.Email
	if email == "" {
		email = "(not found)"
	}
	sb.WriteString(fmt.Sprintf("Name:        %s\n", name))
	sb.WriteString(fmt.Sprintf("Email:       %s\n", email))
	sb.WriteString(fmt.Sprintf("Experience:  %s\n", parsed.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Text length: %d\n", parsed.TextLength))
	sb.WriteString("\n")

	if len(parsed.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(parsed.Skills)))
		count := min(len(parsed.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", parsed.Skills[i]))
		}
		if len(parsed.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(parsed.Keywords.Technologies) > 0 {
		technologies := strings.Join(parsed.Keywords.Technologies, ", ")
		if len(technologies) > 50 {
			technologies = technologies[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Technologies: %s\n", technologies))
	}
	if len(parsed.Keywords.JobTitles) > 0 {
		titles := strings.Join(parsed.Keywords.JobTitles, ", ")
		if len(titles) > 50 {
			titles = titles[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Job titles:   %s\n", titles))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnhancedSummary outputs the generated summary, projects and rating.
func (p *Printer) PrintEnhancedSummary(summary *types.EnhancedSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rating: %.2f / 5\n\n", summary.ResumeRating))

	if len(summary.ProjectsSummary) > 0 {
		sb.WriteString(fmt.Sprintf("Projects (%d):\n", len(summary.ProjectsSummary)))
		count := min(len(summary.ProjectsSummary), maxItemsToShow)
		for i := 0; i < count; i++ {
			proj := summary.ProjectsSummary[i]
			sb.WriteString(fmt.Sprintf("  • %s", proj.Name))
			if len(proj.TechStack) > 0 {
				stack := strings.Join(proj.TechStack, ", ")
				if len(stack) > 35 {
					stack = stack[:32] + "..."
				}
				sb.WriteString(fmt.Sprintf(" [%s]", stack))
			}
			sb.WriteString("\n")
		}
		if len(summary.ProjectsSummary) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.ProjectsSummary)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(summary.InterviewTopics) > 0 {
		sb.WriteString("Interview Topics:\n")
		count := min(len(summary.InterviewTopics), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.InterviewTopics[i]))
		}
		if len(summary.InterviewTopics) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.InterviewTopics)-maxItemsToShow))
		}
	}

	p.printBox("ENHANCED SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewModules outputs the four interview modules in compact form.
func (p *Printer) PrintInterviewModules(mods *types.InterviewModules) {
	if mods == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("Technical:\n")
	skills := strings.Join(mods.TechnicalInterview.Skills, ", ")
	if len(skills) > 50 {
		skills = skills[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("  Skills: %s\n\n", skills))

	sb.WriteString("Coding Test:\n")
	sb.WriteString(fmt.Sprintf("  Difficulty: %s\n", mods.CodingTest.DifficultyLevel))
	topics := strings.Join(mods.CodingTest.Topics, ", ")
	if len(topics) > 45 {
		topics = topics[:42] + "..."
	}
	sb.WriteString(fmt.Sprintf("  Topics: %s\n\n", topics))

	sb.WriteString("HR:\n")
	hrSkills := strings.Join(mods.HRInterview.Skills, ", ")
	if len(hrSkills) > 50 {
		hrSkills = hrSkills[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("  Skills: %s\n\n", hrSkills))

	sb.WriteString("Behavioral:\n")
	count := min(len(mods.BehavioralInterview.STARPoints), 3)
	for i := 0; i < count; i++ {
		point := mods.BehavioralInterview.STARPoints[i]
		if len(point) > 50 {
			point = point[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", point))
	}
	if len(mods.BehavioralInterview.STARPoints) > 3 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(mods.BehavioralInterview.STARPoints)-3))
	}

	p.printBox("INTERVIEW MODULES", strings.TrimSuffix(sb.String(), "\n"))
}
