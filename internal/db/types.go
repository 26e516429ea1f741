package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-pdf/internal/layout"
)

// DefaultListLimit caps ListDocuments when no limit is given.
const DefaultListLimit = 50

// Document represents a stored rendering
type Document struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Content   []byte                `json:"-"` // resume content JSON the PDF was rendered from
	PDF       []byte                `json:"-"`
	Trace     []layout.SectionTrace `json:"trace,omitempty"`
	FinalY    float64               `json:"final_y"`
	CreatedAt time.Time             `json:"created_at"`
}

// DocumentInput holds everything needed to store a rendering
type DocumentInput struct {
	Name    string
	Content []byte
	PDF     []byte
	Trace   []layout.SectionTrace
	FinalY  float64
}

// DocumentSummary is a lightweight view of a document for listing
type DocumentSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SizeBytes int       `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDocumentInput builds an input from a rendered document and its source JSON.
func NewDocumentInput(name string, content []byte, doc *layout.Document) DocumentInput {
	return DocumentInput{
		Name:    name,
		Content: content,
		PDF:     doc.Bytes,
		Trace:   doc.Sections,
		FinalY:  doc.FinalY,
	}
}
