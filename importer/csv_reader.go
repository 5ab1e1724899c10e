package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"traysheet/config"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type CSVReader struct {
	Comma    rune
	Decoding encoding.Encoding
	Missing  []string
}

func NewCSVReader(cfg config.CSVConfig) (*CSVReader, error) {
	comma, size := utf8.DecodeRuneInString(cfg.Delimiter)
	if comma == utf8.RuneError || size != len(cfg.Delimiter) {
		return nil, fmt.Errorf("invalid csv delimiter %q", cfg.Delimiter)
	}

	enc, err := encodingByName(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	return &CSVReader{Comma: comma, Decoding: enc, Missing: cfg.MissingValues}, nil
}

func (r *CSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	return r.read(file)
}

func (r *CSVReader) read(source io.Reader) ([]Record, error) {
	enc := r.Decoding
	if enc == nil {
		enc = unicode.UTF8
	}
	// A byte order mark, if present, overrides the configured encoding.
	decoder := unicode.BOMOverride(enc.NewDecoder())

	reader := csv.NewReader(transform.NewReader(source, decoder))
	reader.FieldsPerRecord = -1
	// Hand-made exports write inch marks (12" Pizza Stone) without quoting.
	reader.LazyQuotes = true
	if r.Comma != 0 {
		reader.Comma = r.Comma
	}

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read csv header: no columns to parse")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	missing := missingSet(r.Missing)
	records := make([]Record, 0, 128)
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}

		record := Record{RowNumber: rowNumber + 1, Values: make(map[string]Cell, len(headers))}
		for i, header := range headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			record.Set(header, classifyCell(value, missing))
		}

		records = append(records, record)
		rowNumber++
	}

	return records, nil
}

func encodingByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unsupported csv encoding: %s", name)
	}
}
