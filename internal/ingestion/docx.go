package ingestion

import (
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphClose = regexp.MustCompile(`</w:p>`)
	docxTabMark        = regexp.MustCompile(`<w:tab[^>]*/>`)
	docxXMLTag         = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX extracts paragraph text from a DOCX (or legacy DOC) document.
// The decoder exposes the raw document XML; paragraph boundaries become line
// breaks and the remaining markup is stripped.
func extractDOCX(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Message: "not a valid DOCX document", Cause: err}
	}
	defer reader.Close()

	content := reader.Editable().GetContent()

	content = docxParagraphClose.ReplaceAllString(content, "\n")
	content = docxTabMark.ReplaceAllString(content, "\t")
	content = docxXMLTag.ReplaceAllString(content, "")
	text := html.UnescapeString(content)

	if len(strings.TrimSpace(text)) < minExtractableChars {
		return "", &ExtractionError{Message: "DOCX contains no extractable text"}
	}

	return text, nil
}
