package layout

import "fmt"

// RenderError reports a failure inside one section. The render pass stops at the
// first one.
type RenderError struct {
	Section string
	Cause   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in %s section: %v", e.Section, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// MarkupWarning records text with an odd number of bold delimiters. It does not stop
// the render.
type MarkupWarning struct {
	Section string
	Text    string
}

func (w MarkupWarning) String() string {
	return fmt.Sprintf("unterminated %q markup in %s section: %q", BoldDelimiter, w.Section, w.Text)
}
