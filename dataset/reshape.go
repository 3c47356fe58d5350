package dataset

// ToLong projects the joined wide table into one row per
// (sample, analyte) pair, carrying the identifying columns plus the
// analyte name and its concentration. Cells that are missing or not
// numeric are dropped from the long view; the wide table itself is
// never touched, so before dropping the long view has exactly
// len(rows) × len(analytes) rows.
func ToLong(rows []map[string]interface{}, analytes []Analyte) []map[string]interface{} {
	long := make([]map[string]interface{}, 0, len(rows)*len(analytes))
	for _, row := range rows {
		for _, a := range analytes {
			value, ok := toFloat64(row[a.Column])
			if !ok {
				continue
			}
			long = append(long, map[string]interface{}{
				ColStudyID:       row[ColStudyID],
				ColSampleName:    row[ColSampleName],
				ColSecretor:      row[ColSecretor],
				ColAnalyte:       a.Name,
				ColConcentration: value,
			})
		}
	}
	return long
}

// ToWide pivots a long view back to one row per sample, with one
// column per analyte. Only cells present in the long view appear in
// the output, so together with ToLong this recovers exactly the
// retained numeric concentrations. Output keeps first-seen sample
// order.
func ToWide(long []map[string]interface{}, analytes []Analyte) []map[string]interface{} {
	byName := make(map[string]string, len(analytes))
	for _, a := range analytes {
		byName[a.Name] = a.Column
	}

	var order []string
	bySample := make(map[string]map[string]interface{})
	for _, row := range long {
		sample := keyString(row[ColSampleName])
		wide, ok := bySample[sample]
		if !ok {
			wide = map[string]interface{}{
				ColStudyID:    row[ColStudyID],
				ColSampleName: row[ColSampleName],
				ColSecretor:   row[ColSecretor],
			}
			bySample[sample] = wide
			order = append(order, sample)
		}
		name, _ := row[ColAnalyte].(string)
		col, ok := byName[name]
		if !ok {
			continue
		}
		wide[col] = row[ColConcentration]
	}

	out := make([]map[string]interface{}, 0, len(order))
	for _, sample := range order {
		out = append(out, bySample[sample])
	}
	return out
}
