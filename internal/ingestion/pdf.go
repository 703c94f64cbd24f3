package ingestion

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts the text layer from a PDF document page by page.
// Pages that fail to decode are skipped; the document only fails as a whole
// when no usable text remains.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Message: "not a valid PDF document", Cause: err}
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	text := sb.String()
	if len(strings.TrimSpace(text)) < minExtractableChars {
		return "", &ExtractionError{Message: "PDF contains no extractable text; the file might be image-based or corrupted"}
	}

	return text, nil
}
