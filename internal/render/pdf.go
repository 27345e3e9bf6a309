package render

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"patrolscribe/constants"
	"patrolscribe/internal/common"
)

// Points, letter page.
const (
	pdfMargin    = 54.0 // 0.75 inch
	pdfBodySize  = 10.0
	pdfLeading   = 14.0
	pdfSpacer    = 7.2 // 0.1 inch for blank lines
	pdfTitleSize = 16.0
	pdfTitleGap  = 18.0 // 0.25 inch under the title
)

// PDF lays the flattened report out as a uniform run of left-aligned
// body paragraphs under a bold centered title. Page breaks come from
// the library's layout flow, not from this walk.
func PDF(kind constants.ReportKind, content string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", pdfTitleSize)
	doc.CellFormat(0, pdfTitleSize+4, title(kind), "", 1, "C", false, 0, "")
	doc.Ln(pdfTitleGap)

	doc.SetFont("Helvetica", "", pdfBodySize)
	for _, ln := range ClassifyAll(content) {
		if ln.Kind == LineBlank {
			doc.Ln(pdfSpacer)
			continue
		}
		doc.MultiCell(0, pdfLeading, ln.Text, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, common.RenderError("pdf serialization failed", err)
	}
	return buf.Bytes(), nil
}
