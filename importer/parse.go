package importer

import (
	"math"
	"strconv"
	"strings"
)

// parseFloat parses a decimal number the way spreadsheet exports write
// them. Surrounding whitespace is ignored; NaN and infinities are rejected.
func parseFloat(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// parseInt parses a number and truncates it toward zero. Values such as
// "12.0" or "3.9" are accepted.
func parseInt(raw string) (int64, bool) {
	value, ok := parseFloat(raw)
	if !ok {
		return 0, false
	}

	truncated := math.Trunc(value)
	if truncated >= math.MaxInt64 || truncated < math.MinInt64 {
		return 0, false
	}
	return int64(truncated), true
}

// parseDecimalCommaInt is parseInt after turning a comma decimal
// separator into a dot.
func parseDecimalCommaInt(raw string) (int64, bool) {
	return parseInt(strings.ReplaceAll(raw, ",", "."))
}
