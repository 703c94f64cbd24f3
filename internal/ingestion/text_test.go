package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "Line 1\nLine 2\nLine 3\nLine 4")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	result := CleanText("- Item 1\n* Item 2\n• Item 3")

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "* Item 2")
	assert.Contains(t, result, "• Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Name    with    wide    gaps")

	assert.Equal(t, "Name with wide gaps", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Section A\n\n\n\n\nSection B")

	assert.NotContains(t, result, "\n\n\n")
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	result := CleanText("Header\n    indented detail")

	assert.Contains(t, result, "    indented detail")
}

func TestCleanText_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \t \n"))
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Some   resume\r\n\n\n\ntext  with   noise"
	assert.Equal(t, CleanText(input), CleanText(input))
}
