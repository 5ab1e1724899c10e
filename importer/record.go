package importer

import "strings"

// CellState distinguishes a column that is not in the source at all from a
// cell the reader marked as missing and from a literally empty string.
type CellState int

const (
	CellAbsent CellState = iota
	CellMissing
	CellEmpty
	CellPresent
)

type Cell struct {
	State CellState
	Raw   string
}

// Usable reports whether the cell holds a non-missing, non-empty value.
func (c Cell) Usable() bool {
	return c.State == CellPresent
}

// NotMissing reports whether the column exists and its cell was not marked
// missing. An empty string still counts.
func (c Cell) NotMissing() bool {
	return c.State == CellEmpty || c.State == CellPresent
}

type Record struct {
	RowNumber int
	Values    map[string]Cell
}

// NewRecord builds a record from raw strings keyed by source header. Values
// listed in missing are stored as missing cells.
func NewRecord(rowNumber int, values map[string]string, missing map[string]bool) Record {
	record := Record{RowNumber: rowNumber, Values: make(map[string]Cell, len(values))}
	for header, value := range values {
		record.Set(header, classifyCell(value, missing))
	}
	return record
}

// Set stores a cell under the normalized form of header. The first cell
// stored for a header wins.
func (r *Record) Set(header string, cell Cell) {
	if r.Values == nil {
		r.Values = make(map[string]Cell)
	}
	key := normalizeHeader(header)
	if _, exists := r.Values[key]; exists {
		return
	}
	r.Values[key] = cell
}

// Lookup returns the cell stored for column. Unknown columns are absent.
func (r Record) Lookup(column string) Cell {
	cell, ok := r.Values[normalizeHeader(column)]
	if !ok {
		return Cell{State: CellAbsent}
	}
	return cell
}

func classifyCell(value string, missing map[string]bool) Cell {
	if missing[value] {
		return Cell{State: CellMissing, Raw: value}
	}
	if value == "" {
		return Cell{State: CellEmpty}
	}
	return Cell{State: CellPresent, Raw: value}
}

func missingSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
	}
	return set
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.TrimPrefix(trimmed, "\ufeff")
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}
