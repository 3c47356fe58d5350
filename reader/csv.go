package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// readCSV loads a CSV source. The first record is the header; its
// identifiers are normalized with NormalizeColumn. Records whose
// field count differs from the header are skipped and counted on the
// returned table.
func readCSV(path string, numeric func(string) bool) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty source, no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	isNumeric := make([]bool, len(header))
	for i, h := range header {
		columns[i] = NormalizeColumn(h)
		isNumeric[i] = numeric != nil && numeric(columns[i])
	}

	table := &Table{Columns: columns}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(table.Rows)+table.Skipped+2, err)
		}
		if len(rec) != len(columns) {
			table.Skipped++
			continue
		}
		row := make(map[string]interface{}, len(columns))
		for i, cell := range rec {
			row[columns[i]] = coerceCell(cell, isNumeric[i])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
