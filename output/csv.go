package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFormatter writes rows as CSV with a header row.
type CSVFormatter struct {
	writer  io.Writer
	columns []string
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// SetColumns fixes the column order of the output. Unset, the sorted
// union of the row columns is used.
func (c *CSVFormatter) SetColumns(columns []string) {
	c.columns = columns
}

// Format writes rows as CSV. Missing cells become empty fields.
func (c *CSVFormatter) Format(rows []map[string]interface{}) error {
	csvWriter := csv.NewWriter(c.writer)

	if len(rows) == 0 {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return fmt.Errorf("flush csv writer: %w", err)
		}
		return nil
	}

	columns := c.columns
	if columns == nil {
		columns = columnNames(rows)
	}

	if err := csvWriter.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("flush csv writer: %w", err)
	}
	return nil
}
