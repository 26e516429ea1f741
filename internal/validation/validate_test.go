package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLayout_Clean(t *testing.T) {
	doc := docEndingAt(7)

	violations, err := CheckLayout(doc, contentWith("Short bio.", "Did things"), measureBackend())
	require.NoError(t, err)
	assert.Empty(t, violations.Violations)
	assert.False(t, violations.HasErrors())
}

func TestCheckLayout_PageOverflowIsError(t *testing.T) {
	doc := docEndingAt(12)

	violations, err := CheckLayout(doc, nil, measureBackend())
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, ViolationPageOverflow, violations.Violations[0].Type)
	assert.Equal(t, SeverityError, violations.Violations[0].Severity)
	assert.Contains(t, violations.Violations[0].AffectedSections, layout.SectionEducation)
	assert.True(t, violations.HasErrors())
}

func TestCheckLayout_MarkupWarnings(t *testing.T) {
	doc := docEndingAt(7)
	doc.Warnings = []layout.MarkupWarning{
		{Section: layout.SectionExperience, Text: "Grew revenue **20%"},
	}

	violations, err := CheckLayout(doc, nil, measureBackend())
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)

	v := violations.Violations[0]
	assert.Equal(t, ViolationUnterminatedMarkup, v.Type)
	assert.Equal(t, SeverityWarning, v.Severity)
	assert.Equal(t, []string{layout.SectionExperience}, v.AffectedSections)
	assert.Contains(t, v.Details, "Grew revenue **20%")
	assert.False(t, violations.HasErrors())
}

func TestCheckLayout_LineOverflow(t *testing.T) {
	doc := docEndingAt(7)
	content := contentWith(strings.Repeat("W", 150))

	violations, err := CheckLayout(doc, content, measureBackend())
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, ViolationLineOverflow, violations.Violations[0].Type)
}

func TestCheckLayout_NilInputs(t *testing.T) {
	_, err := CheckLayout(nil, nil, measureBackend())
	var vErr *Error
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, err.Error(), "document is nil")

	_, err = CheckLayout(docEndingAt(7), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend is nil")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Message: "failed", Cause: cause}

	assert.Equal(t, "validation error: failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "validation error: failed", (&Error{Message: "failed"}).Error())
}
