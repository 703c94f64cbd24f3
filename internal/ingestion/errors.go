package ingestion

import "fmt"

// UnsupportedFormatError represents a format hint outside the supported set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Format)
}

// ExtractionError represents a failure to extract text from a document:
// missing or empty files, corrupt documents, or documents with no text layer.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// EmptyContentError represents extracted text too short to profile.
type EmptyContentError struct {
	Length int
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("resume content is too short to parse (%d viable characters)", e.Length)
}
