package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"traysheet/config"
	"traysheet/importer"
	"traysheet/output"
)

type convertOptions struct {
	InputPath    string
	OutputPath   string
	InputFormat  string
	OutputFormat string
}

// runConvert reads the source file, maps every record and writes the
// template sheet. Progress and warnings go to out.
func runConvert(out io.Writer, cfg config.Config, options convertOptions) error {
	outputPath := resolveOutputPath(options.InputPath, options.OutputPath, cfg.Output.Extension)
	if filepath.Clean(outputPath) == filepath.Clean(options.InputPath) {
		return fmt.Errorf("output path %s would overwrite the input file", outputPath)
	}

	format := options.OutputFormat
	if strings.TrimSpace(format) == "" {
		format = detectOutputFormat(outputPath)
	}
	writer, err := output.WriterForFormat(format, cfg.Output)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Reading CSV file: %s\n", options.InputPath)
	records, err := importer.Read(options.InputPath, options.InputFormat, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Processing %d products...\n", len(records))
	result := importer.Convert(records, cfg)
	for _, warning := range result.Warnings {
		fmt.Fprintln(out, warning)
	}

	fmt.Fprintf(out, "Saving to %s\n", outputPath)
	if err := writer.Write(outputPath, result.Rows); err != nil {
		return err
	}

	fmt.Fprintf(out, "Rows read: %d, Rows converted: %d, Warnings: %d\n",
		result.RowsRead, len(result.Rows), len(result.Warnings))
	fmt.Fprintf(out, "Conversion complete. Output saved to %s\n", outputPath)
	return nil
}

// resolveOutputPath returns outputPath when set, otherwise inputPath with its
// extension replaced by extension.
func resolveOutputPath(inputPath, outputPath, extension string) string {
	if strings.TrimSpace(outputPath) != "" {
		return outputPath
	}

	base := filepath.Base(inputPath)
	ext := filepath.Ext(inputPath)
	if ext == base {
		// Dot files such as ".products" have no extension.
		ext = ""
	}
	return strings.TrimSuffix(inputPath, ext) + extension
}

func detectOutputFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	default:
		return "excel"
	}
}
