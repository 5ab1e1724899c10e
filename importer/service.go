package importer

import (
	"path/filepath"
	"strings"
	"traysheet/config"
	"traysheet/product"
)

type Result struct {
	RowsRead int
	Rows     []product.Row
	Warnings []Warning
}

// Read loads all records from path. When format is empty it is inferred
// from the file extension.
func Read(path, format string, cfg config.Config) ([]Record, error) {
	reader, err := ReaderForFormat(InferFormat(path, format), cfg.CSV)
	if err != nil {
		return nil, err
	}
	return reader.Read(path)
}

// Convert maps records in input order. The n-th record becomes sheet row
// FirstDataRow+n.
func Convert(records []Record, cfg config.Config) *Result {
	mapper := NewMapper(cfg)
	result := &Result{
		RowsRead: len(records),
		Rows:     make([]product.Row, 0, len(records)),
	}
	for i, record := range records {
		row, warnings := mapper.Map(record, FirstDataRow+i)
		result.Rows = append(result.Rows, row)
		result.Warnings = append(result.Warnings, warnings...)
	}
	return result
}

// InferFormat returns format when given, otherwise "excel" for workbook
// extensions and "csv" for everything else.
func InferFormat(path string, format string) string {
	if strings.TrimSpace(format) != "" {
		return format
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "xlsx", "xlsm":
		return "excel"
	default:
		return "csv"
	}
}
