package output

import (
	"fmt"
	"strings"
	"traysheet/config"
	"traysheet/product"
)

type Writer interface {
	Write(path string, rows []product.Row) error
}

func WriterForFormat(format string, cfg config.OutputConfig) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx", "xls":
		return &ExcelWriter{
			SheetName:      cfg.SheetName,
			MinColumnWidth: cfg.MinColumnWidth,
			ColumnPadding:  cfg.ColumnPadding,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
