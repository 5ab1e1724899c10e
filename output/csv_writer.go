package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"traysheet/product"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, rows []product.Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	if err := writeCSV(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close csv output %s: %w", path, err)
	}

	return nil
}

func writeCSV(out io.Writer, rows []product.Row) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(product.Headers()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	record := make([]string, product.NumFields)
	for _, row := range rows {
		for i, value := range row {
			record[i] = value.Text()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
