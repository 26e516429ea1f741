package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-pdf/internal/db"
	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/pdf"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/jonathan/resume-pdf/internal/validation"
)

// DocumentResponse represents the response for POST /documents and GET /documents/{id}/trace
type DocumentResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	FinalY     float64               `json:"final_y"`
	Sections   []layout.SectionTrace `json:"sections"`
	Violations []types.Violation     `json:"violations,omitempty"`
	CreatedAt  string                `json:"created_at,omitempty"`
}

// rendered is a successfully rendered request body
type rendered struct {
	raw        []byte
	content    *types.ResumeContent
	doc        *layout.Document
	violations *types.Violations
}

// renderBody decodes, validates and renders the resume content in the request body.
func (s *Server) renderBody(w http.ResponseWriter, r *http.Request) (*rendered, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ErrValidation{Field: "body", Message: fmt.Sprintf("must be at most %d bytes", tooLarge.Limit)}
		}
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}

	content, err := rendering.DecodeContent(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateResumeContent(raw); err != nil {
		return nil, err
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}

	doc, err := rendering.RenderPDF(content, rendering.Options{Logger: s.logger})
	if err != nil {
		return nil, err
	}

	violations, err := validation.CheckLayout(doc, content, pdf.New(doc.Page))
	if err != nil {
		return nil, err
	}

	return &rendered{raw: raw, content: content, doc: doc, violations: violations}, nil
}

// setLayoutHeaders exposes the layout summary on a PDF response
func setLayoutHeaders(w http.ResponseWriter, res *rendered) {
	w.Header().Set("X-Layout-Final-Y", strconv.FormatFloat(res.doc.FinalY, 'f', 2, 64))
	w.Header().Set("X-Layout-Warnings", strconv.Itoa(len(res.doc.Warnings)))
	w.Header().Set("X-Layout-Violations", strconv.Itoa(len(res.violations.Violations)))
}

// pdfResponse writes PDF bytes
func (s *Server) pdfResponse(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", pdfFilename(name)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Printf("Error writing PDF response: %v", err)
	}
}

// pdfFilename turns a document name into a safe file name
func pdfFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "resume.pdf"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	if name == "" {
		return "resume.pdf"
	}
	return name + ".pdf"
}

// handleRender renders the posted resume content and returns the PDF
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	res, err := s.renderBody(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	setLayoutHeaders(w, res)
	s.pdfResponse(w, res.content.Header.Name, res.doc.Bytes)
}

// handleCreateDocument renders the posted content and stores the result
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, &ErrStoreUnavailable{})
		return
	}

	res, err := s.renderBody(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = res.content.Header.Name
	}

	id, err := s.store.SaveDocument(r.Context(), db.NewDocumentInput(name, res.raw, res.doc))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, DocumentResponse{
		ID:         id.String(),
		Name:       name,
		FinalY:     res.doc.FinalY,
		Sections:   res.doc.Sections,
		Violations: res.violations.Violations,
	})
}

// lookupDocument loads the document named by the {id} path value
func (s *Server) lookupDocument(r *http.Request) (*db.Document, error) {
	if s.store == nil {
		return nil, &ErrStoreUnavailable{}
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}

	doc, err := s.store.GetDocument(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, &ErrDocumentNotFound{ID: id}
	}
	return doc, nil
}

// handleGetDocument streams a stored PDF
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.lookupDocument(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.pdfResponse(w, doc.Name, doc.PDF)
}

// handleGetDocumentTrace returns the stored layout trace
func (s *Server) handleGetDocumentTrace(w http.ResponseWriter, r *http.Request) {
	doc, err := s.lookupDocument(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, DocumentResponse{
		ID:        doc.ID.String(),
		Name:      doc.Name,
		FinalY:    doc.FinalY,
		Sections:  doc.Trace,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
	})
}

// handleDeleteDocument removes a stored document
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, &ErrStoreUnavailable{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	deleted, err := s.store.DeleteDocument(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if !deleted {
		s.errorFromErr(w, &ErrDocumentNotFound{ID: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListDocuments lists recent documents
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, &ErrStoreUnavailable{})
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			s.errorFromErr(w, &ErrValidation{Field: "limit", Message: "must be between 1 and 500"})
			return
		}
		limit = n
	}

	docs, err := s.store.ListDocuments(r.Context(), limit)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if docs == nil {
		docs = []db.DocumentSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"documents": docs, "count": len(docs)})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	storage := "disabled"
	if s.store != nil {
		storage = "enabled"
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "storage": storage})
}
