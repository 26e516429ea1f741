// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/types"
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintContentSummary outputs a human-readable summary of the resume content.
func (p *Printer) PrintContentSummary(content *types.ResumeContent) {
	if content == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", content.Header.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", content.Header.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", content.Header.Phone))
	sb.WriteString(fmt.Sprintf("Summary:  %d chars\n", len([]rune(content.Summary.Description))))
	sb.WriteString("\n")

	if len(content.TopSkills.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n\n", truncate(strings.Join(content.TopSkills.Skills, ", "), 40)))
	}

	positions := content.Experience.Positions
	if len(positions) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(positions), maxItemsToShow)
		for i := 0; i < count; i++ {
			job := positions[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%d bullets)\n", job.Company, job.Position, len(job.Bullets)))
		}
		if len(positions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(positions)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Education: %s [%s]\n", content.Education.School, content.Education.GradYear))

	p.printBox("RESUME CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLayoutTrace outputs where each section landed and any markup warnings.
func (p *Printer) PrintLayoutTrace(doc *layout.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %8s %8s\n", "Section", "Start", "End"))
	for _, s := range doc.Sections {
		sb.WriteString(fmt.Sprintf("%-12s %7.2fin %7.2fin\n", s.Name, s.StartY, s.EndY))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Final Y:  %.2fin of %.2fin\n", doc.FinalY, doc.Page.ContentBottom()))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes", len(doc.Bytes)))

	if len(doc.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("\n\nMarkup warnings: %d\n", len(doc.Warnings)))
		count := min(len(doc.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", doc.Warnings[i]))
		}
		if len(doc.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Warnings)-maxItemsToShow))
		}
	}

	p.printBox("LAYOUT TRACE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any layout violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Type, v.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 45)))
		if len(v.AffectedSections) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(v.AffectedSections, ", ")))
		}
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LAYOUT VIOLATIONS", sb.String())
}
