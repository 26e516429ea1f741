// Package pdf implements the layout backend on top of fpdf.
package pdf

import "fmt"

// BackendError wraps a failure reported by fpdf while measuring, drawing or writing.
type BackendError struct {
	Op    string
	Cause error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("pdf backend error: %s: %v", e.Op, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}
