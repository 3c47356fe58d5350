package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// readParquet loads a parquet source into a Table. Column order comes
// from the file schema; identifiers are normalized the same way as
// CSV headers.
func readParquet(path string, numeric func(string) bool) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}

	pq, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	fields := pq.Schema().Fields()
	columns := make([]string, len(fields))
	rename := make(map[string]string, len(fields))
	isNumeric := make(map[string]bool, len(fields))
	for i, field := range fields {
		columns[i] = NormalizeColumn(field.Name())
		rename[field.Name()] = columns[i]
		isNumeric[columns[i]] = numeric != nil && numeric(columns[i])
	}

	table := &Table{Columns: columns}
	r := parquet.NewReader(pq)
	defer func() { _ = r.Close() }()

	for {
		raw := make(map[string]interface{})
		if err := r.Read(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make(map[string]interface{}, len(raw))
		for k, v := range raw {
			col, ok := rename[k]
			if !ok {
				col = NormalizeColumn(k)
			}
			row[col] = coerceValue(v, isNumeric[col])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
