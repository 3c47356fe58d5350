// Package stats computes descriptive aggregates over the dataset
// tables: per-analyte summary statistics, per-study secretor
// composition, per-study geography, and the dashboard KPI overview.
//
// Everything here is descriptive. An empty input is a valid state
// that yields empty (or null-statistic) output, never an error, so a
// caller can always tell "nothing matched the filter" apart from a
// failed load.
package stats

import (
	"math"
	"sort"

	"github.com/hmolab/milkstat/dataset"
)

// Summary holds the descriptive statistics for one analyte within the
// current subset. Statistics are nil when undefined: all of them when
// N is zero, and Std whenever N < 2. Std is the sample standard
// deviation (n−1 divisor), consistently across the system.
type Summary struct {
	Analyte string
	N       int
	P05     *float64
	Median  *float64
	P95     *float64
	Mean    *float64
	Std     *float64
}

// Summarize computes one Summary per analyte from a long table,
// considering only the non-missing numeric concentrations it holds.
// Analytes with no surviving values still get a row with N = 0.
// Output order follows the analyte schema. Restricting to a secretor
// subgroup is done upstream with filter.SecretorIn.
func Summarize(long []map[string]interface{}, analytes []dataset.Analyte) []Summary {
	values := make(map[string][]float64, len(analytes))
	for _, row := range long {
		name, _ := row[dataset.ColAnalyte].(string)
		v, ok := toFloat64(row[dataset.ColConcentration])
		if !ok {
			continue
		}
		values[name] = append(values[name], v)
	}

	out := make([]Summary, 0, len(analytes))
	for _, a := range analytes {
		out = append(out, summarize(a.Name, values[a.Name]))
	}
	return out
}

func summarize(name string, values []float64) Summary {
	s := Summary{Analyte: name, N: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s.P05 = ptr(quantile(sorted, 0.05))
	s.Median = ptr(quantile(sorted, 0.5))
	s.P95 = ptr(quantile(sorted, 0.95))

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))
	s.Mean = ptr(mean)

	if len(sorted) >= 2 {
		ss := 0.0
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		s.Std = ptr(math.Sqrt(ss / float64(len(sorted)-1)))
	}
	return s
}

// quantile returns the p-th quantile of sorted values using linear
// interpolation between the surrounding order statistics.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func ptr(v float64) *float64 { return &v }
