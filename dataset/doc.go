// Package dataset turns the three raw milk-study sources into
// analysis-ready shapes: the joined wide table, the derived secretor
// label, the analyte schema, and the long (sample × analyte) view.
//
// Every step is a pure function over []map[string]interface{} rows.
// Inputs are never mutated and each step returns a fresh table, so no
// stage can be disturbed by a later stage's edits.
//
// The usual entry point is Build, which runs the whole pipeline:
//
//	loader := reader.NewLoader(reader.NumericByMarker(cfg.AnalyteMarker,
//		dataset.ColLatitude, dataset.ColLongitude))
//	ds, err := dataset.Build(loader, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ds.Samples: joined wide table
//	// ds.Long:    one row per (sample, analyte)
package dataset
