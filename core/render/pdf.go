// Package render — PDF renderer.
// Lays classified blocks out as a printable PDF using gofpdf.
// Headings get variable font sizes, labels are bold, list items bulleted.
package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/jung-kurt/gofpdf"
)

var (
	tagRegex  = regexp.MustCompile(`<[^>]*>`)
	boldRegex = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders blocks as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts blocks into PDF bytes.
func (r *PDFRenderer) Render(blocks []core.Block, meta core.Metadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate so bullets and accents print.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	for _, block := range blocks {
		switch block.Kind {
		case core.KindHeading:
			renderHeading(pdf, tr(cleanInline(block.Text)), block.Level)
		case core.KindSectionLabel:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(cleanInline(block.Text)), "", "L", false)
			pdf.Ln(1)
		case core.KindBulletList:
			pdf.SetFont("Helvetica", "", 10)
			for _, item := range block.Items {
				pdf.MultiCell(0, 5, tr("• "+cleanInline(item)), "", "L", false)
			}
			pdf.Ln(3)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInline(block.Text)), "", "L", false)
			pdf.Ln(3)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
// Levels past 6 print at the smallest heading size.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInline strips pasted markup and bold markers for print.
func cleanInline(text string) string {
	text = tagRegex.ReplaceAllString(text, "")
	text = boldRegex.ReplaceAllString(text, "$1")
	text = html.UnescapeString(text)
	return strings.TrimSpace(text)
}
