package ingestion

import (
	"regexp"
	"strings"
)

var reBlankRuns = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes text content while preserving paragraph structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			line = ""
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	// Collapse runs of blank lines to a single paragraph break
	result = reBlankRuns.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
