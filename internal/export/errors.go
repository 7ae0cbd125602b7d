// Package export produces a print-ready HTML snapshot of a resume and ships
// it to the external PDF-rendering service.
package export

import (
	"errors"
	"fmt"
)

// ErrInsufficientCredits is returned when the rendering service rejects the
// export for lack of credits. Callers route this to the billing flow.
var ErrInsufficientCredits = errors.New("insufficient credits")

// ErrExportInProgress is returned when an export is requested while another
// one is already running for the same session.
var ErrExportInProgress = errors.New("export already in progress")

// ServiceError represents a failure response from the PDF rendering service.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("pdf service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("pdf service error (status %d)", e.StatusCode)
}

// ExportError represents a general export pipeline failure.
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
