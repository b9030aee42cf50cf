// Package export lays out displayed ideas as a downloadable PDF report.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	// DefaultTitle heads every report.
	DefaultTitle = "Business Ideas Report"
	// FileName is the suggested download name.
	FileName = "business-ideas.pdf"
	// TextFileName is the suggested name for the plain-text download.
	TextFileName = "business_ideas.txt"

	// DateLayout matches the short US date the browser form prints.
	DateLayout = "1/2/2006"

	marginLeft  = 20.0
	titleY      = 20.0
	dateY       = 30.0
	bodyY       = 40.0
	bodyWidth   = 170.0
	lineHeight  = 5.0
	marginBelow = 20.0
)

// Document is the input to Render.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Body        string
}

// Render writes doc as an A4 PDF to w. A blank body yields a report holding
// only the title and the generation date.
func Render(w io.Writer, doc Document) error {
	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}
	generatedAt := doc.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(false, marginBelow)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(marginLeft, titleY, tr(title))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, dateY, tr("Generated on: "+generatedAt.Format(DateLayout)))

	pdf.SetFont("Helvetica", "", 10)
	_, pageHeight := pdf.GetPageSize()
	y := bodyY
	for _, line := range wrap(pdf, tr, doc.Body) {
		if y > pageHeight-marginBelow {
			pdf.AddPage()
			y = titleY
		}
		if line != "" {
			pdf.Text(marginLeft, y, line)
		}
		y += lineHeight
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// wrap splits body into lines that fit bodyWidth at the current font,
// keeping the body's own line breaks. Lines come back already translated to
// the core font encoding; runes it cannot represent become ".".
func wrap(pdf *fpdf.Fpdf, tr func(string) string, body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		para = strings.TrimRight(para, " \t")
		if para == "" {
			lines = append(lines, "")
			continue
		}
		for _, line := range pdf.SplitLines([]byte(tr(para)), bodyWidth) {
			lines = append(lines, string(line))
		}
	}
	return lines
}
