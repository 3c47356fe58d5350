// Package reader loads the tabular sources of a milk-study dataset
// into memory.
//
// Two on-disk formats are supported: CSV, the staging format of the
// contributing studies, and Apache Parquet. Every source becomes a
// Table: an ordered column list plus rows as maps, the shape the rest
// of the pipeline works in.
//
// Column identifiers are normalized exactly once, at load time, and
// never re-derived downstream. Columns matched by the loader's
// numeric predicate (concentrations, coordinates) are coerced to
// nullable float64; a cell that fails to parse becomes a missing
// value, not an error. Malformed rows are skipped and counted on the
// returned table rather than silently merged.
//
// Basic usage:
//
//	loader := reader.NewLoader(reader.NumericByMarker("%", "Latitude", "Longitude"))
//	table, err := loader.Load("staging/hmo_samples.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(table.Rows), "rows,", table.Skipped, "skipped")
//
// Loads are cached per path, keyed on a size+mtime fingerprint of the
// file, so repeated loads of an unchanged source return the
// already-parsed table while a rewritten source is re-read.
package reader
