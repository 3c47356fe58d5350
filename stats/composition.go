package stats

import (
	"sort"

	"github.com/hmolab/milkstat/dataset"
)

// Composition is the secretor-status breakdown of one study. The
// fractions are shares of the study's original sample total. They are
// deliberately not renormalized when a view hides the Unknown group:
// SecretorPct + NonSecretorPct always equals 1 − UnknownPct, and all
// three always sum to 1.
type Composition struct {
	StudyID string
	Total   int

	Secretors    int
	NonSecretors int
	Unknowns     int

	SecretorPct    float64
	NonSecretorPct float64
	UnknownPct     float64
}

// Compose counts each study's samples per secretor label and converts
// the counts to fractions of that study's total. A study absent from
// the (possibly filtered) input is simply absent from the output; no
// zero or NaN rows appear. Results are ordered by study identifier.
func Compose(rows []map[string]interface{}) []Composition {
	byStudy := make(map[string]*Composition)
	for _, row := range rows {
		id := fieldText(row, dataset.ColStudyID)
		c, ok := byStudy[id]
		if !ok {
			c = &Composition{StudyID: id}
			byStudy[id] = c
		}
		c.Total++
		switch dataset.Label(fieldText(row, dataset.ColSecretor)) {
		case dataset.Secretor:
			c.Secretors++
		case dataset.NonSecretor:
			c.NonSecretors++
		default:
			c.Unknowns++
		}
	}

	out := make([]Composition, 0, len(byStudy))
	for _, c := range byStudy {
		total := float64(c.Total)
		c.SecretorPct = float64(c.Secretors) / total
		c.NonSecretorPct = float64(c.NonSecretors) / total
		c.UnknownPct = float64(c.Unknowns) / total
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudyID < out[j].StudyID })
	return out
}
