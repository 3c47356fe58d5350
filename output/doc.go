// Package output renders pipeline tables at the presentation
// boundary.
//
// Every formatter consumes rows as []map[string]interface{}, the
// shape every pipeline stage produces, so the joined wide table, the
// long view, and aggregation outputs all render without further
// transformation.
//
// Supported formats:
//   - JSON Lines: one JSON object per row, suitable for streaming
//     into a chart layer
//   - CSV: header row plus one record per row
//   - Text: aligned table for terminal inspection
//
// Basic usage:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	formatter.SetColumns([]string{"Study ID", "Sample Name"})
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
//
// Without SetColumns, formatters emit the sorted union of the column
// names present in the rows, which keeps output deterministic for
// heterogeneous tables (for example left joins with null-filled
// sides).
package output
