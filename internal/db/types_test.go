package db

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentInput(t *testing.T) {
	doc := &layout.Document{
		Bytes:    []byte("%PDF-1.3"),
		Sections: []layout.SectionTrace{{Name: layout.SectionHeader, StartY: 1.3, EndY: 1.5}},
		FinalY:   6.7,
	}

	input := NewDocumentInput("jane", []byte(`{"header":{}}`), doc)

	assert.Equal(t, "jane", input.Name)
	assert.Equal(t, []byte("%PDF-1.3"), input.PDF)
	assert.Equal(t, `{"header":{}}`, string(input.Content))
	assert.Equal(t, doc.Sections, input.Trace)
	assert.Equal(t, 6.7, input.FinalY)
}

func TestDocument_JSONOmitsBinaryFields(t *testing.T) {
	d := Document{
		Name:    "jane",
		PDF:     []byte("%PDF-1.3"),
		Content: []byte(`{}`),
		FinalY:  6.7,
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "jane", decoded["name"])
	assert.NotContains(t, decoded, "pdf")
	assert.NotContains(t, decoded, "content")
	assert.NotContains(t, decoded, "trace")
}
