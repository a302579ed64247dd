// Package ingestion obtains normalized plain text from resume and
// job-description documents.
package ingestion

import "fmt"

// ExtractionError means resume or job text could not be obtained at all:
// the container format is unsupported, or the document is corrupt or empty.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
