package layout

const (
	// BulletMarker prefixes every experience bullet before wrapping.
	BulletMarker = "    •  "
	// BulletIndent prefixes continuation lines of a wrapped bullet so they sit under
	// the bullet text rather than under the marker.
	BulletIndent = "       "
)

// WrapText wraps text to width in the given style.
func WrapText(b Backend, text string, width float64, style Style) ([]string, error) {
	return b.SplitText(text, width, style)
}

// WrapBullets marks and wraps each bullet, indenting its continuation lines, and
// returns all lines in order.
func WrapBullets(b Backend, bullets []string, width float64, style Style) ([]string, error) {
	var lines []string
	for _, bullet := range bullets {
		wrapped, err := b.SplitText(BulletMarker+bullet, width, style)
		if err != nil {
			return nil, err
		}
		for i, line := range wrapped {
			if i > 0 {
				line = BulletIndent + line
			}
			lines = append(lines, line)
		}
	}
	return lines, nil
}
