package dataset

import (
	"fmt"

	"github.com/hmolab/milkstat/config"
	"github.com/hmolab/milkstat/reader"
)

// Dataset is the analysis-ready form of the three sources: the joined
// wide table, its long (sample × analyte) projection, the detected
// analyte schema, and per-source counts of malformed rows skipped at
// load.
type Dataset struct {
	Samples  []map[string]interface{}
	Long     []map[string]interface{}
	Analytes []Analyte
	Skipped  map[string]int
}

// Build runs the full transformation pipeline: load the three
// sources, collapse multi-row study locations, left-join location and
// description metadata onto the samples, derive the secretor label,
// detect the analyte schema, and project the long view.
//
// Failures here are fatal: an unreadable source, a table missing its
// identifier columns, or a sample table with no analyte columns.
// Data-quality problems inside rows never surface as errors; they are
// resolved where they occur (skipped row, nil cell, Unknown label).
func Build(loader *reader.Loader, cfg *config.Config) (*Dataset, error) {
	samples, err := loader.Load(cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("samples: %w", err)
	}
	if err := requireColumns(samples, "samples", ColStudyID, ColSampleName); err != nil {
		return nil, err
	}

	locations, err := loader.Load(cfg.Locations)
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}
	if err := requireColumns(locations, "locations", ColStudyID); err != nil {
		return nil, err
	}

	descriptions, err := loader.Load(cfg.Descriptions)
	if err != nil {
		return nil, fmt.Errorf("descriptions: %w", err)
	}
	if err := requireColumns(descriptions, "descriptions", ColStudyID); err != nil {
		return nil, err
	}

	analytes, err := DetectAnalytes(samples.Columns, cfg.AnalyteMarker, cfg.ExcludeColumns)
	if err != nil {
		return nil, fmt.Errorf("samples: %w", err)
	}

	joined := LeftJoin(samples.Rows, CollapseStudies(locations.Rows, ColStudyID), ColStudyID)
	joined = LeftJoin(joined, descriptions.Rows, ColStudyID)
	joined = AnnotateSecretor(joined)

	return &Dataset{
		Samples:  joined,
		Long:     ToLong(joined, analytes),
		Analytes: analytes,
		Skipped: map[string]int{
			"samples":      samples.Skipped,
			"locations":    locations.Skipped,
			"descriptions": descriptions.Skipped,
		},
	}, nil
}

func requireColumns(t *reader.Table, source string, cols ...string) error {
	have := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = struct{}{}
	}
	for _, c := range cols {
		if _, ok := have[c]; !ok {
			return fmt.Errorf("%s table: missing required column %q", source, c)
		}
	}
	return nil
}
