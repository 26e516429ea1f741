package layout

import "math"

// PageConfig holds page geometry, font sizes and section spacing. Lengths are inches.
type PageConfig struct {
	TopMargin    float64
	LeftMargin   float64
	RightMargin  float64
	BottomMargin float64

	PageWidth  float64
	PageHeight float64

	TitleFontSize float64
	TextFontSize  float64

	SectionTitleSpacing float64
	SectionTextSpacing  float64
	SectionEndSpacing   float64

	SeparatorWidth float64
}

// DefaultPageConfig returns the fixed page policy every resume is rendered with.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		TopMargin:           1,
		LeftMargin:          1,
		RightMargin:         1,
		BottomMargin:        1,
		PageWidth:           8.25,
		PageHeight:          11.75,
		TitleFontSize:       16,
		TextFontSize:        11,
		SectionTitleSpacing: 0.4,
		SectionTextSpacing:  0.3,
		SectionEndSpacing:   0.2,
		SeparatorWidth:      0.005,
	}
}

// ContentWidth is the horizontal extent between the left and right margins.
func (p PageConfig) ContentWidth() float64 {
	return p.PageWidth - p.LeftMargin - p.RightMargin
}

// RightEdge is the x coordinate right-aligned text is anchored to.
func (p PageConfig) RightEdge() float64 {
	return p.PageWidth - p.RightMargin
}

// SummaryWidth is the wrap width of the summary paragraph, which may run half an inch
// into the right margin.
func (p PageConfig) SummaryWidth() float64 {
	return p.ContentWidth() + summaryWidthAllowance
}

// BulletWidth is the wrap width of experience bullets.
func (p PageConfig) BulletWidth() float64 {
	return p.ContentWidth()
}

// ContentBottom is the lowest y coordinate content may reach.
func (p PageConfig) ContentBottom() float64 {
	return p.PageHeight - p.BottomMargin
}

// TextStyle returns the body text style in the given face.
func (p PageConfig) TextStyle(face Face) Style {
	return Style{Face: face, Size: p.TextFontSize}
}

// TitleStyle returns the section title style.
func (p PageConfig) TitleStyle() Style {
	return Style{Face: FaceBold, Size: p.TitleFontSize}
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
