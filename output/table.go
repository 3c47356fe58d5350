package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders rows as an aligned text table, for terminal
// inspection of summaries and compositions.
type TableFormatter struct {
	writer  io.Writer
	columns []string
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// SetColumns fixes the column order of the output. Unset, the sorted
// union of the row columns is used.
func (t *TableFormatter) SetColumns(columns []string) {
	t.columns = columns
}

// Format writes rows as an aligned table with a header row.
func (t *TableFormatter) Format(rows []map[string]interface{}) error {
	columns := t.columns
	if columns == nil {
		columns = columnNames(rows)
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(columns)
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		table.Append(record)
	}
	table.Render()
	return nil
}
