package dataset

import (
	"fmt"
	"strings"
)

// Analyte is one measured substance: the wide-table column holding
// its concentration and the display name with the concentration
// marker stripped. Carrying both keeps the stripped and unstripped
// forms interconvertible.
type Analyte struct {
	Column string
	Name   string
}

// DetectAnalytes scans column identifiers for the concentration
// marker suffix and returns the analyte schema in original column
// order. Columns listed in exclude (declared totals or other summary
// fields) are dropped. Detection is deterministic: the same columns
// always yield the same analyte list, in the same order.
//
// Zero detected analytes is an error rather than a silently empty
// aggregation downstream, and so is a pair of columns that collapse
// to the same name once the marker is stripped.
func DetectAnalytes(columns []string, marker string, exclude []string) ([]Analyte, error) {
	if marker == "" {
		return nil, fmt.Errorf("analyte marker must not be empty")
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		excluded[strings.TrimSpace(e)] = struct{}{}
	}

	seen := make(map[string]string, len(columns))
	var analytes []Analyte
	for _, col := range columns {
		if !strings.HasSuffix(col, marker) {
			continue
		}
		if _, skip := excluded[col]; skip {
			continue
		}
		name := strings.TrimSpace(strings.TrimSuffix(col, marker))
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("analyte name %q derived from both %q and %q", name, prev, col)
		}
		seen[name] = col
		analytes = append(analytes, Analyte{Column: col, Name: name})
	}

	if len(analytes) == 0 {
		return nil, fmt.Errorf("no analyte columns matched marker %q", marker)
	}
	return analytes, nil
}
