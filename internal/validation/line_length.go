package validation

import (
	"fmt"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/types"
)

// widthTolerance absorbs float noise in measured widths.
const widthTolerance = 1e-6

// ValidateLineWidths re-wraps the summary and every experience bullet with the same
// widths the renderer uses and reports each line that is still wider than its wrap
// width. Such lines come from words too long to break.
func ValidateLineWidths(b layout.Backend, content *types.ResumeContent) ([]types.Violation, error) {
	page := layout.DefaultPageConfig()
	normal := page.TextStyle(layout.FaceNormal)

	var violations []types.Violation

	summary, err := layout.WrapText(b, content.Summary.Description, page.SummaryWidth(), normal)
	if err != nil {
		return nil, &Error{Message: "failed to wrap summary", Cause: err}
	}
	found, err := overWideLines(b, summary, page.SummaryWidth(), normal, layout.SectionSummary, "Summary")
	if err != nil {
		return nil, err
	}
	violations = append(violations, found...)

	// Continuation padding is added after wrapping, so bullet lines are measured as
	// the wrapper produced them and numbered within their own bullet.
	for _, job := range content.Experience.Positions {
		for k, bullet := range job.Bullets {
			lines, err := b.SplitText(layout.BulletMarker+bullet, page.BulletWidth(), normal)
			if err != nil {
				return nil, &Error{Message: fmt.Sprintf("failed to wrap bullets for %s", job.Company), Cause: err}
			}
			where := fmt.Sprintf("%s bullet %d", job.Company, k+1)
			found, err := overWideLines(b, lines, page.BulletWidth(), normal, layout.SectionExperience, where)
			if err != nil {
				return nil, err
			}
			violations = append(violations, found...)
		}
	}

	return violations, nil
}

func overWideLines(b layout.Backend, lines []string, limit float64, style layout.Style, section, where string) ([]types.Violation, error) {
	var violations []types.Violation
	for i, line := range lines {
		w, err := b.StringWidth(line, style)
		if err != nil {
			return nil, &Error{Message: "failed to measure line", Cause: err}
		}
		if w <= limit+widthTolerance {
			continue
		}
		violations = append(violations, types.Violation{
			Type:             ViolationLineOverflow,
			Severity:         SeverityWarning,
			Details:          fmt.Sprintf("%s line %d is %.2fin wide, wrap width is %.2fin", where, i+1, w, limit),
			AffectedSections: []string{section},
			LineNumber:       intPtr(i + 1),
			Width:            floatPtr(layout.Round2(w)),
		})
	}
	return violations, nil
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
