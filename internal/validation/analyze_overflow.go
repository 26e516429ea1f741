package validation

import (
	"math"

	"github.com/jonathan/resume-pdf/internal/layout"
)

// OverflowAnalysis describes how far a rendered layout runs past the content area.
type OverflowAnalysis struct {
	ExcessHeight float64 // inches below the bottom margin
	ExcessLines  int     // text lines that would need to go to fit
	Sections     []string
}

// Overflowing reports whether the layout ran past the bottom margin.
func (a *OverflowAnalysis) Overflowing() bool {
	return a.ExcessHeight > 0
}

// AnalyzePageOverflow measures how far the final cursor passed the bottom margin.
// lineHeight converts the excess to whole lines and must be positive for ExcessLines
// to be filled in. Sections lists every section whose separator falls below the margin.
func AnalyzePageOverflow(doc *layout.Document, lineHeight float64) *OverflowAnalysis {
	analysis := &OverflowAnalysis{}
	if doc == nil {
		return analysis
	}

	bottom := doc.Page.ContentBottom()
	if doc.FinalY <= bottom {
		return analysis
	}

	analysis.ExcessHeight = layout.Round2(doc.FinalY - bottom)
	if lineHeight > 0 {
		analysis.ExcessLines = int(math.Ceil(analysis.ExcessHeight / lineHeight))
	}
	for _, s := range doc.Sections {
		if s.EndY > bottom {
			analysis.Sections = append(analysis.Sections, s.Name)
		}
	}
	return analysis
}
