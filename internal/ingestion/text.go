package ingestion

import (
	"regexp"
	"strings"
)

var (
	blankRunPattern = regexp.MustCompile(`\n\n\n+`)
	spaceRunPattern = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes extracted text while preserving line structure, which
// the line-oriented extractors depend on: CRLF becomes LF, runs of spaces
// and tabs collapse to one space, trailing whitespace is trimmed per line,
// and runs of blank lines are reduced to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRunPattern.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimRight(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
