// Package schemas holds the JSON Schemas for the data resume-pdf reads.
package schemas

import _ "embed"

// ResumeContent is the JSON Schema for resume content input.
//
//go:embed resume_content.schema.json
var ResumeContent []byte

// ResumeContentPath is the schema's path relative to the repository root.
const ResumeContentPath = "schemas/resume_content.schema.json"
