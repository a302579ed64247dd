package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	cleaned := CleanText("line one\r\nline two\rline three")

	assert.Equal(t, "line one\nline two\nline three", cleaned)
}

func TestCleanText_CollapsesSpaceRuns(t *testing.T) {
	cleaned := CleanText("too   many\t\tspaces")

	assert.Equal(t, "too many spaces", cleaned)
}

func TestCleanText_TrimsTrailingWhitespacePerLine(t *testing.T) {
	cleaned := CleanText("line one   \nline two\t")

	assert.Equal(t, "line one\nline two", cleaned)
}

func TestCleanText_CollapsesBlankLineRuns(t *testing.T) {
	cleaned := CleanText("para one\n\n\n\n\npara two")

	assert.Equal(t, "para one\n\npara two", cleaned)
}

func TestCleanText_PreservesSingleBlankLines(t *testing.T) {
	cleaned := CleanText("para one\n\npara two")

	assert.Equal(t, "para one\n\npara two", cleaned)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n  \n"))
}
