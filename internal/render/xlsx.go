package render

import (
	"github.com/xuri/excelize/v2"

	"patrolscribe/constants"
	"patrolscribe/internal/common"
)

// XLSX writes the flattened report into a single worksheet: bold rows
// for section headers, key/value column pairs for fields, narrative
// text in the key column, one spacer row per blank line.
func XLSX(kind constants.ReportKind, content string) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Report"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, common.RenderError("xlsx sheet setup failed", err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, common.RenderError("xlsx style setup failed", err)
	}

	write := func(col, row int, v string) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	embolden := func(col, row int) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellStyle(sheet, cell, cell, boldID)
	}

	write(1, 1, title(kind))
	embolden(1, 1)

	row := 3
	for _, ln := range ClassifyAll(content) {
		switch ln.Kind {
		case LineSectionHeader:
			write(1, row, ln.Text)
			embolden(1, row)
		case LineField:
			write(1, row, ln.Key)
			embolden(1, row)
			write(2, row, ln.Value)
		case LineNarrative:
			write(1, row, ln.Text)
		}
		row++
	}

	// Widen the key and value columns
	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "B", "B", 64)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.RenderError("xlsx serialization failed", err)
	}
	return buf.Bytes(), nil
}
