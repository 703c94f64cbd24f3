package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-profiler/internal/config"
	"github.com/jonathan/resume-profiler/internal/ingestion"
	"github.com/jonathan/resume-profiler/internal/observability"
	"github.com/jonathan/resume-profiler/internal/pipeline"
	"github.com/jonathan/resume-profiler/internal/schemas"
	"github.com/jonathan/resume-profiler/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse resume documents into structured profile JSON",
	Long:  "Parse one or more PDF or DOCX resumes into structured profile JSON that validates against the parsed_resume schema. Raw text can be profiled directly with --text.",
	RunE:  runParse,
}

var (
	parseFormat     string
	parseOutDir     string
	parseConfigFile string
	parseText       string
	parseModules    bool
	parseValidate   bool
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Format hint for all inputs (pdf or docx); defaults to each file's extension")
	parseCmd.Flags().StringVarP(&parseOutDir, "out-dir", "o", ".", "Directory to write output JSON files")
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseText, "text", "", "Profile raw resume text instead of reading files")
	parseCmd.Flags().BoolVar(&parseModules, "modules", false, "Also derive the interview module breakdown")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate output JSON against the shipped schemas")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print formatted summaries of each parsed resume")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	if parseText == "" && len(args) == 0 {
		return fmt.Errorf("must provide resume files or --text")
	}
	if parseText != "" && len(args) > 0 {
		return fmt.Errorf("cannot combine --text with file arguments")
	}

	cfg := config.DefaultConfig()
	if parseConfigFile != "" {
		loaded, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if parseVerbose {
		cfg.Verbose = true
	}

	if err := os.MkdirAll(parseOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	parser := pipeline.New(cfg)

	if parseText != "" {
		return profileText(parser, parseText)
	}

	// Each input is independent, so batch inputs run concurrently. The first
	// failure cancels the remaining work.
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(4)
	for _, path := range args {
		path := path
		g.Go(func() error {
			return profileFile(parser, path)
		})
	}
	return g.Wait()
}

func profileText(parser *pipeline.Parser, text string) error {
	parsed, err := parser.ParseText(text)
	if err != nil {
		return fmt.Errorf("failed to parse resume text: %w", err)
	}
	return writeOutputs(parser, "resume", text, parsed)
}

func profileFile(parser *pipeline.Parser, path string) error {
	format := parseFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	parsed, err := parser.Parse(path, format)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	// Module derivation needs the raw text again, so re-extract it rather
	// than threading it through Parse's return value.
	var text string
	if parseModules {
		text, err = ingestion.ExtractText(path, format)
		if err != nil {
			return fmt.Errorf("failed to re-read %s: %w", path, err)
		}
	}

	return writeOutputs(parser, stem, text, parsed)
}

func writeOutputs(parser *pipeline.Parser, stem, text string, parsed *types.ParsedResume) error {
	profilePath := filepath.Join(parseOutDir, stem+".profile.json")
	if err := writeJSON(profilePath, parsed); err != nil {
		return err
	}
	if parseValidate {
		if err := validateOutput(schemas.ParsedResumeSchema, profilePath); err != nil {
			return err
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	if parseVerbose {
		printer.PrintParsedResume(parsed)
		printer.PrintEnhancedSummary(parsed.Summary)
	}

	if parseModules {
		mods := parser.Modules(parsed, text)
		modulesPath := filepath.Join(parseOutDir, stem+".modules.json")
		if err := writeJSON(modulesPath, mods); err != nil {
			return err
		}
		if parseValidate {
			if err := validateOutput(schemas.InterviewModulesSchema, modulesPath); err != nil {
				return err
			}
		}
		if parseVerbose {
			printer.PrintInterviewModules(&mods)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", modulesPath)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", profilePath)

	return nil
}

func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func validateOutput(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: schema %s not found; skipping validation\n", schemaRelPath)
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		// Distinguish between validation errors (data doesn't match schema) and schema load errors
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
	return nil
}
