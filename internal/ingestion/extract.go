// Package ingestion extracts and normalizes text from resume documents.
package ingestion

import (
	"os"
	"strings"
)

// minExtractableChars is the smallest amount of trimmed text a decoder must
// produce before the document is considered to have a usable text layer.
const minExtractableChars = 10

// ExtractText extracts plain text from a resume document based on the caller's
// format hint. The hint is case-insensitive and may carry a leading dot.
// Supported formats are pdf, docx and doc; anything else returns an
// UnsupportedFormatError without touching the file.
func ExtractText(path, format string) (string, error) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))

	switch normalized {
	case "pdf":
		if err := checkFile(path); err != nil {
			return "", err
		}
		return extractPDF(path)
	case "docx", "doc":
		if err := checkFile(path); err != nil {
			return "", err
		}
		return extractDOCX(path)
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
}

// checkFile rejects missing and zero-byte files before decoding starts.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ExtractionError{Message: "file not found at path " + path, Cause: err}
		}
		return &ExtractionError{Message: "failed to stat file " + path, Cause: err}
	}
	if info.Size() == 0 {
		return &ExtractionError{Message: "file is empty (0 bytes)"}
	}
	return nil
}
