// Package layout places resume sections on a fixed-size page by threading a vertical cursor
// through each section renderer.
package layout

// DefaultLineHeightFactor is the line height, as a multiple of the font size, used for
// body text and multi-line blocks.
const DefaultLineHeightFactor = 1.15

// Face selects the font face of a measure or draw call.
type Face int

const (
	FaceNormal Face = iota
	FaceBold
	FaceItalic
)

func (f Face) String() string {
	switch f {
	case FaceBold:
		return "bold"
	case FaceItalic:
		return "italic"
	default:
		return "normal"
	}
}

// Style is the complete font state for one backend call. Backends must not carry
// font state from one call into the next.
type Style struct {
	Face Face
	Size float64 // points
}

// Align is the horizontal anchoring of drawn text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Backend measures and draws text. All coordinates and widths are in page units;
// y is the text baseline measured from the top of the page.
type Backend interface {
	// LineHeight returns the height of one line of text at the given size.
	LineHeight(size float64) float64
	// StringWidth returns the rendered width of text in the given style.
	StringWidth(text string, style Style) (float64, error)
	// SplitText wraps text so that no line is wider than width, where possible.
	SplitText(text string, width float64, style Style) ([]string, error)
	// Text draws a single line of text.
	Text(text string, x, y float64, style Style, align Align) error
	// TextLines draws lines left-aligned starting at y, spaced size*factor apart.
	TextLines(lines []string, x, y float64, style Style, factor float64) error
	// Line draws a straight segment.
	Line(x1, y1, x2, y2 float64) error
	// Finish closes the document and returns its bytes.
	Finish() ([]byte, error)
}
