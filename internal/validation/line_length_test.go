package validation

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/pdf"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measureBackend() layout.Backend {
	return pdf.New(layout.DefaultPageConfig())
}

func contentWith(summary string, bullets ...string) *types.ResumeContent {
	return &types.ResumeContent{
		Summary: types.Summary{Description: summary},
		Experience: types.Experience{
			Positions: []types.Job{{Company: "Acme", Position: "Engineer", Bullets: bullets}},
		},
	}
}

func TestValidateLineWidths_NoViolations(t *testing.T) {
	content := contentWith(
		strings.Repeat("Builds reliable systems. ", 20),
		"Led the migration of billing to a new platform",
		"Cut p99 latency by **40%**",
	)

	violations, err := ValidateLineWidths(measureBackend(), content)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateLineWidths_UnbreakableSummaryWord(t *testing.T) {
	content := contentWith("See " + strings.Repeat("W", 120) + " for details")

	violations, err := ValidateLineWidths(measureBackend(), content)
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, ViolationLineOverflow, v.Type)
	assert.Equal(t, SeverityWarning, v.Severity)
	assert.Equal(t, []string{layout.SectionSummary}, v.AffectedSections)
	require.NotNil(t, v.LineNumber)
	assert.Equal(t, 2, *v.LineNumber)
	require.NotNil(t, v.Width)
	assert.Greater(t, *v.Width, layout.DefaultPageConfig().SummaryWidth())
}

func TestValidateLineWidths_UnbreakableBulletWord(t *testing.T) {
	content := contentWith("Short bio.", "ok", "https://example.com/"+strings.Repeat("x", 200))

	violations, err := ValidateLineWidths(measureBackend(), content)
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	for _, v := range violations {
		assert.Equal(t, []string{layout.SectionExperience}, v.AffectedSections)
	}
}

func TestValidateLineWidths_WrappedBulletOfShortWords(t *testing.T) {
	bullet := strings.Repeat("Reduced build times by sharing and caching dependency layers across teams so that every ", 3)
	content := contentWith("Short bio.", bullet)

	b := measureBackend()
	lines, err := layout.WrapBullets(b, []string{bullet}, layout.DefaultPageConfig().BulletWidth(), layout.DefaultPageConfig().TextStyle(layout.FaceNormal))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(lines), 3)

	violations, err := ValidateLineWidths(b, content)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateLineWidths_NumbersLinesWithinBullet(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("x", 200)
	content := &types.ResumeContent{
		Summary: types.Summary{Description: "Short bio."},
		Experience: types.Experience{
			Positions: []types.Job{
				{Company: "Acme", Position: "Engineer", Bullets: []string{"one", "two", "three"}},
				{Company: "Globex", Position: "Lead", Bullets: []string{"first", "See " + long}},
			},
		},
	}

	violations, err := ValidateLineWidths(measureBackend(), content)
	require.NoError(t, err)
	require.NotEmpty(t, violations)

	v := violations[0]
	require.NotNil(t, v.LineNumber)
	assert.Equal(t, 2, *v.LineNumber)
	assert.Contains(t, v.Details, "Globex bullet 2 line 2")
}
