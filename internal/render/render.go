package render

import (
	"fmt"
	"strings"

	"patrolscribe/constants"
	"patrolscribe/internal/common"
)

// Render produces the document bytes for a flattened report in the
// requested format. Callers validate the format before dispatching.
func Render(f constants.Format, kind constants.ReportKind, content string) ([]byte, error) {
	switch f {
	case constants.FormatPDF:
		return PDF(kind, content)
	case constants.FormatDOCX:
		return DOCX(kind, content)
	case constants.FormatXLSX:
		return XLSX(kind, content)
	}
	return nil, common.RenderError(fmt.Sprintf("no renderer for format %q", f), nil)
}

// FileName is the deterministic download name:
// "<kind lowercased, spaces to underscores>_report.<ext>".
func FileName(kind constants.ReportKind, f constants.Format) string {
	base := strings.ReplaceAll(strings.ToLower(string(kind)), " ", "_")
	return base + "_report." + f.Ext()
}

func title(kind constants.ReportKind) string {
	return string(kind) + " Report"
}
