package rendering

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page layout in millimeters
const (
	pageMargin = 25.0
	lineHeight = 5.5
	paraGap    = 3.0
)

// PDFOptions configures letter PDF rendering
type PDFOptions struct {
	// CandidateName is printed as a bold signature under the letter body
	// when set and not already present at the end of the letter.
	CandidateName string
	// Date is printed in the top right corner. Zero means today.
	Date time.Time
}

// RenderPDF lays the letter out on an A4 page: date line, then the body
// paragraphs justified, then an optional signature block.
func RenderPDF(letterText string, opts PDFOptions) ([]byte, error) {
	text := strings.TrimSpace(letterText)
	if text == "" {
		return nil, &RenderError{Message: "letter text is empty"}
	}

	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core fonts are cp1252; translate so curly quotes and dashes survive
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, lineHeight, tr(date.Format("January 2, 2006")), "", 1, "R", false, 0, "")
	pdf.Ln(lineHeight)

	for _, paragraph := range splitParagraphs(text) {
		pdf.MultiCell(0, lineHeight, tr(paragraph), "", "J", false)
		pdf.Ln(paraGap)
	}

	if opts.CandidateName != "" && !strings.HasSuffix(text, opts.CandidateName) {
		pdf.Ln(lineHeight)
		pdf.MultiCell(0, lineHeight, tr("Sincerely,"), "", "L", false)
		pdf.Ln(paraGap)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, lineHeight, tr(opts.CandidateName), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

// splitParagraphs breaks letter text on blank lines, keeping single line
// breaks inside a paragraph as spaces.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		paragraphs = append(paragraphs, strings.Join(strings.Fields(block), " "))
	}
	return paragraphs
}
