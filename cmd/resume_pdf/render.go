package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/jonathan/resume-pdf/internal/db"
	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/pdf"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/jonathan/resume-pdf/internal/validation"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render resume content JSON to a one-page PDF",
	Long: `Render lays out a resume content JSON file and writes the PDF.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRender,
}

var (
	renderConfigPath  string
	renderInput       string
	renderOutput      string
	renderTrace       string
	renderAuthor      string
	renderVerbose     bool
	renderStrict      bool
	renderStore       bool
	renderDatabaseURL string
)

func init() {
	renderCmd.Flags().StringVar(&renderConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume content JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output PDF file (default resume.pdf)")
	renderCmd.Flags().StringVar(&renderTrace, "trace", "", "Path to write the layout trace JSON (optional)")
	renderCmd.Flags().StringVar(&renderAuthor, "author", "", "PDF author metadata (defaults to the candidate's name)")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print content summary, layout trace and violations")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Fail when layout checks report errors")
	renderCmd.Flags().BoolVar(&renderStore, "store", false, "Also store the rendered PDF in the database")
	renderCmd.Flags().StringVar(&renderDatabaseURL, "db-url", "", "Database URL for --store (defaults to DATABASE_URL)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if renderConfigPath != "" {
		loadedCfg, err := config.LoadConfig(renderConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Flags win over the config file
	if cmd.Flags().Changed("in") {
		cfg.Input = renderInput
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = renderOutput
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = renderTrace
	}
	if cmd.Flags().Changed("author") {
		cfg.Author = renderAuthor
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = renderVerbose
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = renderStrict
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = renderStore
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = renderDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Output:      "resume.pdf",
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	if cfg.Input == "" {
		return fmt.Errorf("--in is required (or set \"input\" in the config file)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Store && cfg.DatabaseURL == "" {
		return fmt.Errorf("--store requires DATABASE_URL or --db-url")
	}

	result, err := renderResume(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if cfg.Store {
		if err := storeResult(cmd.Context(), cfg, result, cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	if cfg.Strict && result.violations.HasErrors() {
		return fmt.Errorf("layout checks failed with %d violation(s)", len(result.violations.Violations))
	}
	return nil
}

// renderResult is what a render produced, kept for storing
type renderResult struct {
	raw        []byte
	content    *types.ResumeContent
	doc        *layout.Document
	violations *types.Violations
}

// traceFile is the JSON written by --trace
type traceFile struct {
	FinalY     float64               `json:"final_y"`
	Sections   []layout.SectionTrace `json:"sections"`
	Warnings   []string              `json:"warnings,omitempty"`
	Violations []types.Violation     `json:"violations,omitempty"`
}

// renderResume renders cfg.Input to cfg.Output. Schema problems are reported as warnings;
// the skill grid shape and struct rules are enforced before anything is drawn.
func renderResume(cfg config.Config, stdout, stderr io.Writer) (*renderResult, error) {
	raw, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateResumeContent(raw); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}

	content, err := rendering.DecodeContent(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if _, err := types.NewSkillGrid(content.TopSkills.Skills); err != nil {
		return nil, err
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume content: %w", err)
	}

	logger := log.New(stderr, "", 0)
	doc, err := rendering.RenderPDF(content, rendering.Options{Logger: logger, Author: cfg.Author})
	if err != nil {
		return nil, err
	}

	if err := rendering.WriteDocument(doc, cfg.Output); err != nil {
		return nil, err
	}

	violations, err := validation.CheckLayout(doc, content, pdf.New(doc.Page))
	if err != nil {
		return nil, err
	}

	if cfg.Trace != "" {
		if err := writeTrace(cfg.Trace, doc, violations); err != nil {
			return nil, err
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(stdout)
		printer.PrintContentSummary(content)
		printer.PrintLayoutTrace(doc)
		printer.PrintViolations(violations)
	}

	fmt.Fprintf(stdout, "Rendered %s (%d bytes)\n", cfg.Output, len(doc.Bytes))
	for _, v := range violations.Violations {
		// markup warnings were already logged during the render
		if v.Type == validation.ViolationUnterminatedMarkup {
			continue
		}
		fmt.Fprintf(stderr, "Warning: %s: %s\n", v.Type, v.Details)
	}

	return &renderResult{raw: raw, content: content, doc: doc, violations: violations}, nil
}

func writeTrace(path string, doc *layout.Document, violations *types.Violations) error {
	trace := traceFile{
		FinalY:     doc.FinalY,
		Sections:   doc.Sections,
		Violations: violations.Violations,
	}
	for _, w := range doc.Warnings {
		trace.Warnings = append(trace.Warnings, w.String())
	}

	data, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write trace file: %w", err)
	}
	return nil
}

func storeResult(ctx context.Context, cfg config.Config, result *renderResult, stdout io.Writer) error {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	id, err := database.SaveDocument(ctx, db.NewDocumentInput(result.content.Header.Name, result.raw, result.doc))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Stored document %s\n", id)
	return nil
}
