package layout

import (
	"errors"
	"strings"
)

// drawCall is one recorded backend call.
type drawCall struct {
	Op     string
	Text   string
	Lines  []string
	X, Y   float64
	X2, Y2 float64
	Style  Style
	Align  Align
	Factor float64
}

// recordingBackend records every draw call. Widths are a fixed amount per rune and
// wrapping breaks at wrapChars runes on word boundaries.
type recordingBackend struct {
	calls      []drawCall
	lineHeight float64
	runeWidth  float64
	wrapChars  int
	failText   string
	finished   bool
}

var errBackend = errors.New("invalid font")

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{lineHeight: 0.2, runeWidth: 0.1, wrapChars: 40}
}

func (r *recordingBackend) LineHeight(float64) float64 {
	return r.lineHeight
}

func (r *recordingBackend) StringWidth(text string, _ Style) (float64, error) {
	return float64(len([]rune(text))) * r.runeWidth, nil
}

func (r *recordingBackend) SplitText(text string, _ float64, _ Style) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	words := strings.Split(text, " ")
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if len([]rune(candidate)) > r.wrapChars && strings.TrimSpace(current) != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current), nil
}

func (r *recordingBackend) Text(text string, x, y float64, style Style, align Align) error {
	if r.failText != "" && strings.Contains(text, r.failText) {
		return errBackend
	}
	r.calls = append(r.calls, drawCall{Op: "text", Text: text, X: x, Y: y, Style: style, Align: align})
	return nil
}

func (r *recordingBackend) TextLines(lines []string, x, y float64, style Style, factor float64) error {
	r.calls = append(r.calls, drawCall{Op: "lines", Lines: lines, X: x, Y: y, Style: style, Factor: factor})
	return nil
}

func (r *recordingBackend) Line(x1, y1, x2, y2 float64) error {
	r.calls = append(r.calls, drawCall{Op: "line", X: x1, Y: y1, X2: x2, Y2: y2})
	return nil
}

func (r *recordingBackend) Finish() ([]byte, error) {
	r.finished = true
	return []byte("%PDF-stub"), nil
}

func (r *recordingBackend) callsOf(op string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
