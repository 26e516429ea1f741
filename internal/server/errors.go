// Package server provides the HTTP API for rendering and storing resume PDFs.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/types"
)

// ErrDocumentNotFound indicates no stored document has the requested ID
type ErrDocumentNotFound struct {
	ID uuid.UUID
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.ID)
}

// ErrStoreUnavailable indicates the server was started without a database
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "document storage is not configured"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		shapeErr    *types.ContentShapeError
		schemaErr   *schemas.ValidationError
		fieldErrs   validator.ValidationErrors
		contentErr  *rendering.ContentError
		requestErr  *ErrValidation
		notFoundErr *ErrDocumentNotFound
		storeErr    *ErrStoreUnavailable
	)
	switch {
	case errors.As(err, &shapeErr), errors.As(err, &schemaErr), errors.As(err, &fieldErrs),
		errors.As(err, &contentErr), errors.As(err, &requestErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &storeErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
