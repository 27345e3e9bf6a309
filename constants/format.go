package constants

import "strings"

// Format is a supported download format for rendered reports.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
)

var allFormats = []Format{FormatPDF, FormatDOCX, FormatXLSX}

// ParseFormat matches case-insensitively against the supported formats.
func ParseFormat(s string) (Format, bool) {
	needle := strings.TrimSpace(s)
	for _, f := range allFormats {
		if strings.EqualFold(needle, string(f)) {
			return f, true
		}
	}
	return "", false
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	return string(f)
}

// MIME returns the content type served for downloads of this format.
func (f Format) MIME() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}
