package layout

import "strings"

// BoldDelimiter toggles between normal and bold runs.
const BoldDelimiter = "**"

// RunKind tags a markup run.
type RunKind int

const (
	RunPlain RunKind = iota
	RunBold
)

// Run is a maximal substring of uniform weight.
type Run struct {
	Kind RunKind
	Text string
}

// Face returns the font face the run is drawn in.
func (r Run) Face() Face {
	if r.Kind == RunBold {
		return FaceBold
	}
	return FaceNormal
}

// ParseMarkup splits text on BoldDelimiter. Pieces at even positions are plain and
// pieces at odd positions are bold; empty pieces are dropped. balanced is false when
// the delimiter count is odd, in which case the trailing text is still styled by parity.
func ParseMarkup(text string) (runs []Run, balanced bool) {
	pieces := strings.Split(text, BoldDelimiter)
	runs = make([]Run, 0, len(pieces))
	for i, piece := range pieces {
		if piece == "" {
			continue
		}
		kind := RunPlain
		if i%2 == 1 {
			kind = RunBold
		}
		runs = append(runs, Run{Kind: kind, Text: piece})
	}
	return runs, len(pieces)%2 == 1
}

// DrawRuns draws runs at baseline y starting from x and returns the x after the last run.
// Left-aligned runs advance rightwards in order. Right-aligned runs are drawn last to
// first, each anchored at x, which then moves left by the run's width, so the text
// reads left to right against the right edge.
func DrawRuns(b Backend, runs []Run, x, y, size float64, align Align) (float64, error) {
	if align == AlignRight {
		for i := len(runs) - 1; i >= 0; i-- {
			width, err := drawRun(b, runs[i], x, y, size, align)
			if err != nil {
				return x, err
			}
			x -= width
		}
		return x, nil
	}

	for _, run := range runs {
		width, err := drawRun(b, run, x, y, size, align)
		if err != nil {
			return x, err
		}
		x += width
	}
	return x, nil
}

func drawRun(b Backend, run Run, x, y, size float64, align Align) (float64, error) {
	style := Style{Face: run.Face(), Size: size}
	if err := b.Text(run.Text, x, y, style, align); err != nil {
		return 0, err
	}
	return b.StringWidth(run.Text, style)
}
