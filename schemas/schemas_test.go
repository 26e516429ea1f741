package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	internalschemas "github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"resume_content.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasSchema && hasProps, "schema should have $schema and properties")
		})
	}
}

func TestEmbeddedSchema_MatchesFile(t *testing.T) {
	data, err := os.ReadFile("resume_content.schema.json")
	require.NoError(t, err)
	assert.Equal(t, data, schemas.ResumeContent)
}

func TestResumeContentSchema_SelfConsistent(t *testing.T) {
	doc := `{
		"header": {"name": "Jane Doe", "phone": "555-0100", "email": "jane@x.com"},
		"summary": {"description": "Short bio."},
		"top_skills": {"skills": ["a", "b", "c", "d", "e", "f"]},
		"experience": {"positions": []},
		"education": {"school": "State", "degree": "", "gpa": "", "grad_year": "2019"}
	}`

	err := internalschemas.ValidateResumeContent([]byte(doc))
	assert.NoError(t, err)
}
