package render

import (
	"bytes"

	docx "github.com/fumiama/go-docx"

	"patrolscribe/constants"
	"patrolscribe/internal/common"
)

// Word run sizes are half-points.
const (
	docxBodyFont  = "Arial"
	docxBodySize  = "22" // 11pt
	docxTitleSize = "32" // 16pt
)

// DOCX walks the flattened report with a section cursor: bold headers
// open a section, "key: value" lines become a bold key run plus a plain
// value run, bare text becomes a narrative paragraph, and a blank line
// closes an open section with a spacing paragraph.
func DOCX(kind constants.ReportKind, content string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	titlePara := doc.AddParagraph().Justification("center")
	body(titlePara.AddText(title(kind))).Size(docxTitleSize).Bold()
	doc.AddParagraph()

	inSection := false
	for _, ln := range ClassifyAll(content) {
		switch ln.Kind {
		case LineSectionHeader:
			if inSection {
				doc.AddParagraph()
			}
			p := doc.AddParagraph()
			body(p.AddText(ln.Text)).Bold()
			inSection = true
		case LineField:
			p := doc.AddParagraph()
			body(p.AddText(ln.Key + ": ")).Bold()
			body(p.AddText(ln.Value))
		case LineNarrative:
			body(doc.AddParagraph().AddText(ln.Text))
		case LineBlank:
			if inSection {
				doc.AddParagraph()
				inSection = false
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, common.RenderError("docx serialization failed", err)
	}
	return buf.Bytes(), nil
}

func body(r *docx.Run) *docx.Run {
	return r.Font(docxBodyFont, "", docxBodyFont, "").Size(docxBodySize)
}
