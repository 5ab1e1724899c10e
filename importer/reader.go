package importer

import (
	"fmt"
	"traysheet/config"
)

type Reader interface {
	Read(path string) ([]Record, error)
}

func ReaderForFormat(format string, cfg config.CSVConfig) (Reader, error) {
	switch normalizeHeader(format) {
	case "csv":
		return NewCSVReader(cfg)
	case "excel", "xlsx", "xlsm":
		return &ExcelReader{Missing: cfg.MissingValues}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}
