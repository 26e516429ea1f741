// Package rendering turns resume content into finished PDF documents.
package rendering

import "fmt"

// ContentError represents an error reading or decoding resume content
type ContentError struct {
	Message string
	Cause   error
}

func (e *ContentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("content error: %s", e.Message)
}

func (e *ContentError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
