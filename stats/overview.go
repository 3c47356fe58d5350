package stats

import "github.com/hmolab/milkstat/dataset"

// Overview carries the dashboard KPI card values for a wide table.
type Overview struct {
	Studies       int     // distinct studies present
	Samples       int     // distinct samples present
	SecretorShare float64 // fraction of rows labeled Secretor
}

// Overall computes the KPI values over a wide table. The secretor
// share is taken over all rows, Unknown included, so the three label
// shares together always cover the whole subset.
func Overall(rows []map[string]interface{}) Overview {
	studies := make(map[string]struct{})
	samples := make(map[string]struct{})
	secretors := 0
	for _, row := range rows {
		if id := fieldText(row, dataset.ColStudyID); id != "" {
			studies[id] = struct{}{}
		}
		if name := fieldText(row, dataset.ColSampleName); name != "" {
			samples[name] = struct{}{}
		}
		if dataset.Label(fieldText(row, dataset.ColSecretor)) == dataset.Secretor {
			secretors++
		}
	}

	o := Overview{Studies: len(studies), Samples: len(samples)}
	if len(rows) > 0 {
		o.SecretorShare = float64(secretors) / float64(len(rows))
	}
	return o
}
