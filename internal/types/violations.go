//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single layout diagnostic
type Violation struct {
	Type             string   `json:"type"`
	Severity         string   `json:"severity"`
	Details          string   `json:"details"`
	AffectedSections []string `json:"affected_sections,omitempty"`
	LineNumber       *int     `json:"line_number,omitempty"`
	Width            *float64 `json:"width,omitempty"`
}

// Violations represents a collection of layout diagnostics
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity.
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == "error" {
			return true
		}
	}
	return false
}
