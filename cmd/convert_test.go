package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"traysheet/config"

	"github.com/xuri/excelize/v2"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	return *cfg
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		output string
		want   string
	}{
		{name: "explicit output wins", input: "products.csv", output: "out/tray.xlsx", want: "out/tray.xlsx"},
		{name: "replaces csv extension", input: "exports/products.csv", want: "exports/products.xls"},
		{name: "keeps inner dots", input: "shop.2024.csv", want: "shop.2024.xls"},
		{name: "appends without extension", input: "products", want: "products.xls"},
		{name: "dot file", input: "data/.products", want: "data/.products.xls"},
		{name: "blank output ignored", input: "products.csv", output: "  ", want: "products.xls"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveOutputPath(tt.input, tt.output, ".xls"); got != tt.want {
				t.Fatalf("unexpected output path: want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDetectOutputFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"products.xls":  "excel",
		"products.XLSX": "excel",
		"products.csv":  "csv",
		"products.CSV":  "csv",
		"products":      "excel",
	}
	for path, want := range tests {
		if got := detectOutputFormat(path); got != want {
			t.Fatalf("unexpected format for %s: want %q, got %q", path, want, got)
		}
	}
}

func TestRunConvert_WritesWorkbookAndReportsProgress(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "products.csv")
	content := "Handle,Title,Variant SKU,Variant Price,Published\n" +
		"blue-shirt,Blue Shirt,1002,49.90,TRUE\n" +
		"red-hat,,,12,FALSE\n"
	if err := os.WriteFile(input, []byte(content), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var out bytes.Buffer
	if err := runConvert(&out, testConfig(t), convertOptions{InputPath: input}); err != nil {
		t.Fatalf("run convert: %v", err)
	}

	outputPath := filepath.Join(dir, "products.xls")
	wantLines := []string{
		"Reading CSV file: " + input,
		"Processing 2 products...",
		"Warning: Missing ID in row 3, using 1003 instead",
		"Warning: Empty product name in row 3, using 'Product red-hat' instead",
		"Saving to " + outputPath,
		"Rows read: 2, Rows converted: 2, Warnings: 2",
		"Conversion complete. Output saved to " + outputPath,
	}
	gotLines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("unexpected output lines: want %q, got %q", wantLines, gotLines)
	}
	for i := range wantLines {
		if gotLines[i] != wantLines[i] {
			t.Fatalf("unexpected line %d: want %q, got %q", i, wantLines[i], gotLines[i])
		}
	}

	file, err := excelize.OpenFile(outputPath)
	if err != nil {
		t.Fatalf("open output workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "1002" || rows[1][2] != "Blue Shirt" || rows[1][6] != "S" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][1] != "1003" || rows[2][2] != "Product red-hat" || rows[2][6] != "N" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}

func TestRunConvert_CSVOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "products.csv")
	if err := os.WriteFile(input, []byte("Title,ID\nLamp,7\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outputPath := filepath.Join(dir, "preview.csv")

	var out bytes.Buffer
	if err := runConvert(&out, testConfig(t), convertOptions{InputPath: input, OutputPath: outputPath}); err != nil {
		t.Fatalf("run convert: %v", err)
	}

	written, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(written)), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected csv output: %q", string(written))
	}
	if !strings.Contains(lines[1], ",7,Lamp,") {
		t.Fatalf("unexpected csv row: %q", lines[1])
	}
}

func TestRunConvert_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "products.csv")
	if err := os.WriteFile(input, []byte("Title\nLamp\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	tests := []struct {
		name    string
		options convertOptions
	}{
		{name: "missing input", options: convertOptions{InputPath: filepath.Join(dir, "missing.csv")}},
		{name: "output overwrites input", options: convertOptions{InputPath: input, OutputPath: input}},
		{name: "unknown output format", options: convertOptions{InputPath: input, OutputFormat: "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runConvert(&out, testConfig(t), tt.options); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "missing.xls")); !os.IsNotExist(err) {
		t.Fatalf("expected no output for missing input, got %v", err)
	}
}
