package reader

import (
	"strconv"
	"strings"
)

// Table is one loaded source. Columns preserves the source column
// order, which analyte detection depends on. Skipped counts malformed
// rows (wrong field count) dropped during load; they are reported
// alongside the table, never silently merged.
type Table struct {
	Columns []string
	Rows    []map[string]interface{}
	Skipped int
}

// NormalizeColumn applies the load-time column identifier policy:
// surrounding whitespace trimmed and internal whitespace runs
// collapsed to a single space. Downstream code relies on identifiers
// already being in this form.
func NormalizeColumn(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// coerceCell converts one CSV cell. Empty cells become nil. Cells in
// numeric columns are parsed as float64, with parse failures mapped
// to nil; cells in other columns keep the trimmed text.
func coerceCell(raw string, numeric bool) interface{} {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if numeric {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return f
	}
	return s
}

// coerceValue normalizes a typed cell from a parquet source. Numeric
// columns end up as float64 or nil; other columns keep their native
// value, except that empty strings become nil to match CSV loads.
func coerceValue(v interface{}, numeric bool) interface{} {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return coerceCell(s, numeric)
	}
	if !numeric {
		return v
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return nil
	}
}
