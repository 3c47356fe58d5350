package dataset

// CollapseStudies reduces a metadata table to one row per study key.
// Multiple rows per study (for example facility-level location rows)
// are an expected shape of the input, and the reduction is owned
// here, not left to the join: numeric fields take the mean, text
// fields keep the first non-null value. Rows without a usable key are
// dropped, since they could never join. Output keeps first-seen study
// order.
func CollapseStudies(rows []map[string]interface{}, key string) []map[string]interface{} {
	type acc struct {
		row    map[string]interface{}
		sums   map[string]float64
		counts map[string]int
	}

	var order []string
	groups := make(map[string]*acc)

	for _, row := range rows {
		k := keyString(row[key])
		if k == "" {
			continue
		}
		g, ok := groups[k]
		if !ok {
			g = &acc{
				row:    map[string]interface{}{key: k},
				sums:   make(map[string]float64),
				counts: make(map[string]int),
			}
			groups[k] = g
			order = append(order, k)
		}
		for col, v := range row {
			if col == key || v == nil {
				continue
			}
			if f, isNum := toFloat64(v); isNum {
				g.sums[col] += f
				g.counts[col]++
				continue
			}
			if _, seen := g.row[col]; !seen {
				g.row[col] = v
			}
		}
	}

	out := make([]map[string]interface{}, 0, len(order))
	for _, k := range order {
		g := groups[k]
		for col, sum := range g.sums {
			g.row[col] = sum / float64(g.counts[col])
		}
		out = append(out, g.row)
	}
	return out
}

// LeftJoin joins every left row against at most one right row on an
// exact match of the key column; when a study appears more than once
// on the right, the first row wins. All left rows appear exactly once
// in the output, and an unmatched row carries an explicit nil for
// every right-side column. On a column collision the left value wins.
// Neither input is modified.
func LeftJoin(left, right []map[string]interface{}, key string) []map[string]interface{} {
	index := make(map[string]map[string]interface{}, len(right))
	rightCols := make(map[string]struct{})
	for _, row := range right {
		for col := range row {
			if col != key {
				rightCols[col] = struct{}{}
			}
		}
		k := keyString(row[key])
		if k == "" {
			continue
		}
		if _, dup := index[k]; !dup {
			index[k] = row
		}
	}

	out := make([]map[string]interface{}, 0, len(left))
	for _, row := range left {
		joined := make(map[string]interface{}, len(row)+len(rightCols))
		for col, v := range row {
			joined[col] = v
		}
		match := index[keyString(row[key])]
		for col := range rightCols {
			if _, taken := joined[col]; taken {
				continue
			}
			if match != nil {
				joined[col] = match[col]
			} else {
				joined[col] = nil
			}
		}
		out = append(out, joined)
	}
	return out
}
