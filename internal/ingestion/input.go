// Package ingestion provides input loading for job descriptions and personal
// histories: plain text, .txt/.pdf files, and embedded sample data fallback.
package ingestion

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

//go:embed sample_data/*.txt
var sampleData embed.FS

// ReadDocument reads a job description or personal history from a file.
// PDF files are converted to plain text; everything else is read as UTF-8 text.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := extractPDFText(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		return CleanText(text), nil
	}

	return CleanText(string(data)), nil
}

// extractPDFText extracts plain text from PDF bytes
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // Skip pages that fail to decode
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("no extractable text in PDF")
	}
	return sb.String(), nil
}

// ResolveJobDescription returns the job description to use for a run.
// Empty input is substituted with embedded sample data; the second return
// value reports whether substitution happened so the caller can warn.
func ResolveJobDescription(input string) (string, bool) {
	return resolveWithSample(input, "sample_data/job_description.txt")
}

// ResolvePersonalHistory returns the personal history to use for a run,
// substituting embedded sample data when the input is empty.
func ResolvePersonalHistory(input string) (string, bool) {
	return resolveWithSample(input, "sample_data/personal_history.txt")
}

func resolveWithSample(input, samplePath string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" {
		return CleanText(trimmed), false
	}

	data, err := sampleData.ReadFile(samplePath)
	if err != nil {
		// Embedded files are compiled in; a miss means a packaging bug.
		panic(fmt.Sprintf("missing embedded sample data %s: %v", samplePath, err))
	}
	return CleanText(string(data)), true
}
