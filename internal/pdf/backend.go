// Package pdf implements the layout backend on top of fpdf.
package pdf

import (
	"bytes"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/jonathan/resume-pdf/internal/layout"
)

// FontFamily is the core font every resume is set in.
const FontFamily = "Helvetica"

// Backend draws on a single fpdf page measured in inches. Text is translated to
// cp1252 for the core fonts before it is measured or drawn.
type Backend struct {
	doc       *fpdf.Fpdf
	translate func(string) string
}

var _ layout.Backend = (*Backend)(nil)

// New creates a one-page document sized and margined by page.
func New(page layout.PageConfig) *Backend {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: page.PageWidth, Ht: page.PageHeight},
	})
	doc.SetMargins(page.LeftMargin, page.TopMargin, page.RightMargin)
	doc.SetAutoPageBreak(false, page.BottomMargin)
	doc.SetCreator("resume-pdf", true)
	doc.AddPage()
	doc.SetLineWidth(page.SeparatorWidth)
	doc.SetFont(FontFamily, "", page.TextFontSize)

	return &Backend{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// SetMetadata sets the document title and author.
func (b *Backend) SetMetadata(title, author string) {
	b.doc.SetTitle(title, true)
	b.doc.SetAuthor(author, true)
}

// LineHeight returns size points converted to inches, times the default factor.
func (b *Backend) LineHeight(size float64) float64 {
	return b.doc.PointConvert(size) * layout.DefaultLineHeightFactor
}

// StringWidth measures text in style.
func (b *Backend) StringWidth(text string, style layout.Style) (float64, error) {
	if err := b.setStyle(style); err != nil {
		return 0, err
	}
	return b.width(text), b.check("measure")
}

// SplitText greedily fills lines word by word. A word wider than width gets a line
// of its own. Leading spaces of the first line are kept so markers can be padded.
func (b *Backend) SplitText(text string, width float64, style layout.Style) ([]string, error) {
	if err := b.setStyle(style); err != nil {
		return nil, err
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, b.wrapParagraph(paragraph, width)...)
	}
	return lines, b.check("wrap")
}

func (b *Backend) wrapParagraph(text string, width float64) []string {
	words := strings.Split(text, " ")
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if strings.TrimSpace(current) != "" && b.width(candidate) > width {
			if word == "" {
				continue
			}
			lines = append(lines, strings.TrimRight(current, " "))
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, strings.TrimRight(current, " "))
}

// Text draws text with its baseline at y. Right-aligned text ends at x.
func (b *Backend) Text(text string, x, y float64, style layout.Style, align layout.Align) error {
	if err := b.setStyle(style); err != nil {
		return err
	}
	if align == layout.AlignRight {
		x -= b.width(text)
	}
	b.doc.Text(x, y, b.translate(text))
	return b.check("text")
}

// TextLines draws each line size*factor below the previous one.
func (b *Backend) TextLines(lines []string, x, y float64, style layout.Style, factor float64) error {
	if err := b.setStyle(style); err != nil {
		return err
	}
	step := b.doc.PointConvert(style.Size) * factor
	for i, line := range lines {
		if line == "" {
			continue
		}
		b.doc.Text(x, y+step*float64(i), b.translate(line))
	}
	return b.check("text lines")
}

// Line draws a segment in the separator line width.
func (b *Backend) Line(x1, y1, x2, y2 float64) error {
	b.doc.Line(x1, y1, x2, y2)
	return b.check("line")
}

// Finish closes the document and returns the PDF bytes.
func (b *Backend) Finish() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return nil, &BackendError{Op: "output", Cause: err}
	}
	return buf.Bytes(), nil
}

func (b *Backend) setStyle(style layout.Style) error {
	b.doc.SetFont(FontFamily, fontStyle(style.Face), style.Size)
	return b.check("set font")
}

func (b *Backend) width(text string) float64 {
	return b.doc.GetStringWidth(b.translate(text))
}

func (b *Backend) check(op string) error {
	if b.doc.Err() {
		return &BackendError{Op: op, Cause: b.doc.Error()}
	}
	return nil
}

func fontStyle(face layout.Face) string {
	switch face {
	case layout.FaceBold:
		return "B"
	case layout.FaceItalic:
		return "I"
	default:
		return ""
	}
}
