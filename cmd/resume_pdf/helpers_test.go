package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleContent = `{
	"header": {"name": "Jane Doe", "phone": "555-0100", "email": "jane@example.com"},
	"summary": {"description": "Backend engineer who likes **reliable** systems."},
	"top_skills": {"skills": ["Go", "SQL", "Kafka", "gRPC", "Docker", "AWS"]},
	"experience": {"positions": [
		{"company": "Acme", "position": "Senior Engineer", "year_start": "2019", "year_end": "2024",
		 "bullets": ["Cut p99 latency by **40%**", "Led the billing migration"]}
	]},
	"education": {"school": "State University", "degree": "B.S. Computer Science", "gpa": "GPA: 3.8", "grad_year": "2019"}
}`

// writeContent writes content JSON into a temp dir and returns its path
func writeContent(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// withContent returns sampleContent with one substitution applied
func withContent(old, replacement string) string {
	return strings.Replace(sampleContent, old, replacement, 1)
}
