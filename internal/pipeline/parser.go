// Package pipeline provides the high-level orchestration for resume profiling.
package pipeline

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-profiler/internal/config"
	"github.com/jonathan/resume-profiler/internal/entities"
	"github.com/jonathan/resume-profiler/internal/ingestion"
	"github.com/jonathan/resume-profiler/internal/modules"
	"github.com/jonathan/resume-profiler/internal/projects"
	"github.com/jonathan/resume-profiler/internal/segmentation"
	"github.com/jonathan/resume-profiler/internal/skills"
	"github.com/jonathan/resume-profiler/internal/types"
)

// Pipeline step and category names used on progress events.
const (
	StepExtraction = "extraction"
	StepEntities   = "entities"
	StepProjects   = "projects"
	StepSynthesis  = "synthesis"

	CategoryIngestion = "ingestion"
	CategoryParsing   = "parsing"
	CategorySynthesis = "synthesis"
)

// ProgressEvent represents a progress update during a parse run.
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called as parse steps complete.
type ProgressCallback func(event ProgressEvent)

// Option configures a Parser.
type Option func(*Parser)

// WithProgress registers a progress callback.
func WithProgress(cb ProgressCallback) Option {
	return func(p *Parser) { p.onProgress = cb }
}

// Parser is the profiling pipeline. All rule sets are compiled once in New;
// the resulting Parser holds no per-run state and is safe for concurrent use.
type Parser struct {
	cfg        config.Config
	seg        *segmentation.Segmenter
	entities   *entities.Extractor
	projects   *projects.Extractor
	normalizer *skills.Normalizer
	synth      *modules.Synthesizer
	onProgress ProgressCallback
}

// New builds a Parser from the given configuration.
func New(cfg config.Config, opts ...Option) *Parser {
	seg := segmentation.NewSegmenter()
	p := &Parser{
		cfg:        cfg,
		seg:        seg,
		entities:   entities.NewExtractor(),
		projects:   projects.NewExtractor(seg, cfg.SubstringRatio, cfg.TokenOverlapRatio),
		normalizer: skills.NewNormalizer(cfg.MaxCoreSkills, cfg.MaxDomainSkills),
		synth:      modules.NewSynthesizer(cfg.MaxTopics, cfg.MaxStarPoints, cfg.MaxHRSkills),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) emitProgress(runID, step, category, message string, content any) {
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// Parse extracts text from the document at path using the caller's format
// hint, then profiles it. Errors are UnsupportedFormatError, ExtractionError
// or EmptyContentError from the ingestion package.
func (p *Parser) Parse(path, format string) (*types.ParsedResume, error) {
	text, err := ingestion.ExtractText(path, format)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text)
}

// ParseText profiles pre-extracted resume text. It is a pure function of its
// input: every call produces fresh values and no state survives between calls.
func (p *Parser) ParseText(text string) (*types.ParsedResume, error) {
	runID := uuid.New().String()

	text = ingestion.CleanText(text)
	if len(strings.TrimSpace(text)) < p.cfg.MinTextLength {
		return nil, &ingestion.EmptyContentError{Length: len(strings.TrimSpace(text))}
	}
	p.emitProgress(runID, StepExtraction, CategoryIngestion, "Cleaned resume text", nil)

	parsed := &types.ParsedResume{
		Name:            p.entities.Name(text),
		Email:           p.entities.Email(text),
		Skills:          p.entities.Skills(text, p.cfg.MaxSkills),
		ExperienceLevel: p.entities.ExperienceLevel(text),
		Keywords:        p.entities.Keywords(text),
		TextLength:      len(text),
	}
	p.emitProgress(runID, StepEntities, CategoryParsing, "Extracted candidate entities", nil)

	lines := strings.Split(text, "\n")
	projectList := p.projects.Extract(lines)
	if len(projectList) == 0 {
		// Fall back to naive mentions only when no structured section parsed
		parsed.Keywords.Projects = p.entities.ProjectMentions(text)
	}
	p.emitProgress(runID, StepProjects, CategoryParsing, "Extracted project entries", nil)

	parsed.Summary = p.synthesize(parsed, projectList, text)
	p.emitProgress(runID, StepSynthesis, CategorySynthesis, "Generated enhanced summary", parsed.Summary)

	return parsed, nil
}

// synthesize builds the enhanced summary, degrading to nil if synthesis
// panics. A broken summary never fails the parse.
func (p *Parser) synthesize(parsed *types.ParsedResume, projectList []types.Project, text string) (summary *types.EnhancedSummary) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: enhanced summary generation failed: %v", r)
			summary = nil
		}
	}()
	return p.synth.EnhancedSummary(parsed, projectList, text)
}

// Modules derives the four interview modules for an already-parsed resume.
// Projects come from the parsed summary when present, otherwise they are
// re-extracted from the text.
func (p *Parser) Modules(parsed *types.ParsedResume, text string) types.InterviewModules {
	text = ingestion.CleanText(text)
	lines := strings.Split(text, "\n")

	var projectList []types.Project
	if parsed.Summary != nil && len(parsed.Summary.ProjectsSummary) > 0 {
		projectList = parsed.Summary.ProjectsSummary
	} else {
		projectList = p.projects.Extract(lines)
	}

	breakdown := p.normalizer.Breakdown(p.skillSectionLines(lines), projectList, parsed.Keywords.Technologies, parsed.Skills)
	return p.synth.Modules(parsed, breakdown, projectList, text)
}

// skillSectionLines returns the non-blank lines of the Technical Skills
// section, or nothing when the resume has none.
func (p *Parser) skillSectionLines(lines []string) []string {
	section, ok := p.seg.Find(lines, segmentation.KindTechnicalSkills)
	if !ok {
		return nil
	}
	var out []string
	for _, line := range lines[section.Start:section.End] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
