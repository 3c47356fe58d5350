package stats

import (
	"sort"

	"github.com/hmolab/milkstat/dataset"
)

// StudyGeo places one map marker per study: the sample count and the
// mean of the coordinates carried on the study's rows. Coordinates
// are nil when no row in the subset has any.
type StudyGeo struct {
	StudyID   string
	Samples   int
	Latitude  *float64
	Longitude *float64
}

// Geography aggregates per-study sample counts and mean coordinates
// from the joined wide table, ordered by study identifier.
func Geography(rows []map[string]interface{}) []StudyGeo {
	type acc struct {
		geo    StudyGeo
		latSum float64
		latN   int
		lonSum float64
		lonN   int
	}

	byStudy := make(map[string]*acc)
	for _, row := range rows {
		id := fieldText(row, dataset.ColStudyID)
		a, ok := byStudy[id]
		if !ok {
			a = &acc{geo: StudyGeo{StudyID: id}}
			byStudy[id] = a
		}
		a.geo.Samples++
		if lat, ok := toFloat64(row[dataset.ColLatitude]); ok {
			a.latSum += lat
			a.latN++
		}
		if lon, ok := toFloat64(row[dataset.ColLongitude]); ok {
			a.lonSum += lon
			a.lonN++
		}
	}

	out := make([]StudyGeo, 0, len(byStudy))
	for _, a := range byStudy {
		if a.latN > 0 {
			a.geo.Latitude = ptr(a.latSum / float64(a.latN))
		}
		if a.lonN > 0 {
			a.geo.Longitude = ptr(a.lonSum / float64(a.lonN))
		}
		out = append(out, a.geo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudyID < out[j].StudyID })
	return out
}
