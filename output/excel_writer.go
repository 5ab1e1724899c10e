package output

import (
	"fmt"
	"os"
	"traysheet/product"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// maxColumnWidth is the widest column a worksheet accepts.
const maxColumnWidth = 255

type ExcelWriter struct {
	SheetName      string
	MinColumnWidth float64
	ColumnPadding  float64
}

// Write saves rows as a single sheet workbook. The file is written through
// an os.File so any extension (including the template's ".xls") is accepted.
func (w *ExcelWriter) Write(path string, rows []product.Row) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if w.SheetName != "" && w.SheetName != sheet {
		if err := file.SetSheetName(sheet, w.SheetName); err != nil {
			return fmt.Errorf("rename sheet %s: %w", sheet, err)
		}
		sheet = w.SheetName
	}

	headerStyle, err := file.NewStyle(headerStyle())
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	headers := product.Headers()
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
		if err := file.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("set excel header style %s: %w", cell, err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			if value.IsEmpty() {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(sheet, cell, value.Any()); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	for col, width := range ColumnWidths(headers, rows, w.MinColumnWidth, w.ColumnPadding) {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := file.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("set excel column width %s: %w", name, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create excel output %s: %w", path, err)
	}
	if err := file.Write(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("save excel output %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close excel output %s: %w", path, err)
	}

	return nil
}

func headerStyle() *excelize.Style {
	border := func(side string) excelize.Border {
		return excelize.Border{Type: side, Color: "000000", Style: 1}
	}
	return &excelize.Style{
		Font: &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{border("left"), border("right"), border("top"), border("bottom")},
	}
}

// ColumnWidths sizes each column to its longest rendered value, header
// included, plus padding and never below minWidth. Empty and zero values do
// not count.
func ColumnWidths(headers []string, rows []product.Row, minWidth, padding float64) []float64 {
	longest := make([]int, len(headers))
	for col, header := range headers {
		longest[col] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for col, value := range row {
			if col >= len(longest) || !value.Truthy() {
				continue
			}
			if n := utf8.RuneCountInString(value.Text()); n > longest[col] {
				longest[col] = n
			}
		}
	}

	widths := make([]float64, len(headers))
	for col, n := range longest {
		width := float64(n) + padding
		if width < minWidth {
			width = minWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		widths[col] = width
	}
	return widths
}
