package validation

import (
	"fmt"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/types"
)

// Violation types reported by CheckLayout.
const (
	ViolationPageOverflow       = "page_overflow"
	ViolationUnterminatedMarkup = "unterminated_markup"
	ViolationLineOverflow       = "line_overflow"

	SeverityError   = "error"
	SeverityWarning = "warning"
)

// CheckLayout inspects a rendered document together with the content it came from.
// The backend is only used for measurement; a fresh one should be passed so nothing
// is drawn onto the rendered document.
func CheckLayout(doc *layout.Document, content *types.ResumeContent, b layout.Backend) (*types.Violations, error) {
	if doc == nil {
		return nil, &Error{Message: "document is nil"}
	}
	if b == nil {
		return nil, &Error{Message: "measurement backend is nil"}
	}

	var all []types.Violation

	overflow := AnalyzePageOverflow(doc, b.LineHeight(doc.Page.TextFontSize))
	if overflow.Overflowing() {
		all = append(all, types.Violation{
			Type:     ViolationPageOverflow,
			Severity: SeverityError,
			Details: fmt.Sprintf("Content ends %.2fin below the bottom margin (about %d lines)",
				overflow.ExcessHeight, overflow.ExcessLines),
			AffectedSections: overflow.Sections,
		})
	}

	for _, w := range doc.Warnings {
		all = append(all, types.Violation{
			Type:             ViolationUnterminatedMarkup,
			Severity:         SeverityWarning,
			Details:          fmt.Sprintf("Odd number of %q delimiters in %q", layout.BoldDelimiter, w.Text),
			AffectedSections: []string{w.Section},
		})
	}

	if content != nil {
		lines, err := ValidateLineWidths(b, content)
		if err != nil {
			return nil, fmt.Errorf("failed to validate line widths: %w", err)
		}
		all = append(all, lines...)
	}

	return &types.Violations{Violations: all}, nil
}
