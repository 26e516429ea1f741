// Package rendering turns resume content into finished PDF documents.
package rendering

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/pdf"
	"github.com/jonathan/resume-pdf/internal/types"
)

// Options configures RenderPDF
type Options struct {
	Logger *log.Logger // receives markup warnings; nil uses log.Default()
	Author string      // PDF author metadata; defaults to the candidate's name
}

// RenderPDF renders content on the default page with the fpdf backend.
func RenderPDF(content *types.ResumeContent, opts Options) (*layout.Document, error) {
	if content == nil {
		return nil, &RenderError{Message: "resume content is nil"}
	}

	author := opts.Author
	if author == "" {
		author = content.Header.Name
	}
	backend := pdf.New(layout.DefaultPageConfig())
	backend.SetMetadata(content.Header.Name+" - Resume", author)

	doc, err := layout.Render(content, backend, layout.Options{Logger: opts.Logger})
	if err != nil {
		return nil, &RenderError{
			Message: "failed to render resume",
			Cause:   err,
		}
	}
	return doc, nil
}

// DecodeContent decodes resume content JSON. Unknown fields are rejected.
func DecodeContent(r io.Reader) (*types.ResumeContent, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var content types.ResumeContent
	if err := decoder.Decode(&content); err != nil {
		return nil, &ContentError{
			Message: "failed to decode resume content JSON",
			Cause:   err,
		}
	}
	return &content, nil
}

// LoadContent reads and decodes a resume content JSON file
func LoadContent(path string) (*types.ResumeContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ContentError{
				Message: fmt.Sprintf("content file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &ContentError{
			Message: fmt.Sprintf("failed to read content file: %s", path),
			Cause:   err,
		}
	}
	return DecodeContent(bytes.NewReader(data))
}

// WriteDocument writes the PDF bytes to path, creating parent directories.
func WriteDocument(doc *layout.Document, path string) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, doc.Bytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
