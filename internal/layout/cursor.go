package layout

import "strings"

// Cursor is the vertical layout state of one render pass. It is a value: every
// operation returns the updated cursor and leaves the receiver untouched.
type Cursor struct {
	Page PageConfig

	// Y is where the next drawing happens. Inside a section it is the content start
	// until EndSection moves it to the separator line.
	Y float64

	// ContentStart is the content start of the most recently begun section.
	ContentStart float64

	started bool
	first   bool
}

// NewCursor returns a cursor positioned before the first section.
func NewCursor(page PageConfig) Cursor {
	return Cursor{Page: page}
}

// BeginSection draws the upper-cased title and moves Y past it to the content start.
// The first section starts at the top margin; later ones leave SectionTitleSpacing
// below the previous separator.
func (c Cursor) BeginSection(b Backend, title string) (Cursor, error) {
	base := c.Page.TopMargin
	if c.started {
		base = c.Y + c.Page.SectionTitleSpacing
	}
	base = Round2(base)

	if err := b.Text(strings.ToUpper(title), c.Page.LeftMargin, base, c.Page.TitleStyle(), AlignLeft); err != nil {
		return c, err
	}

	c.first = !c.started
	c.started = true
	c.Y = Round2(base + c.Page.SectionTextSpacing)
	c.ContentStart = c.Y
	return c, nil
}

// EndSection moves Y past delta of content, draws the separator line there and leaves
// Y on it. The first section's separator sits directly under its content.
func (c Cursor) EndSection(b Backend, delta float64) (Cursor, error) {
	lineY := c.Y + delta
	if !c.first {
		lineY += c.Page.SectionEndSpacing
	}
	lineY = Round2(lineY)

	if err := b.Line(c.Page.LeftMargin, lineY, c.Page.RightEdge(), lineY); err != nil {
		return c, err
	}

	c.Y = lineY
	c.first = false
	return c, nil
}

// Started reports whether any section has begun.
func (c Cursor) Started() bool {
	return c.started
}
