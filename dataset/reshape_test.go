package dataset

import (
	"reflect"
	"testing"
)

var reshapeAnalytes = []Analyte{
	{Column: "2'FL %", Name: "2'FL"},
	{Column: "LNnT %", Name: "LNnT"},
}

func reshapeRows() []map[string]interface{} {
	return []map[string]interface{}{
		{
			ColStudyID: "S1", ColSampleName: "S1-001", ColSecretor: "Secretor",
			"2'FL %": 10.0, "LNnT %": 5.0,
		},
		{
			ColStudyID: "S1", ColSampleName: "S1-002", ColSecretor: "Non-secretor",
			"2'FL %": 20.0, "LNnT %": nil,
		},
		{
			ColStudyID: "S1", ColSampleName: "S1-003", ColSecretor: "Unknown",
			"2'FL %": nil, "LNnT %": nil,
		},
	}
}

func TestToLong(t *testing.T) {
	wide := reshapeRows()
	long := ToLong(wide, reshapeAnalytes)

	// Row-count law: at most samples × analytes, short by exactly the
	// missing cells (three here).
	if max := len(wide) * len(reshapeAnalytes); len(long) > max {
		t.Errorf("long rows = %d, exceeds %d", len(long), max)
	}
	if len(long) != 3 {
		t.Fatalf("long rows = %d, want 3", len(long))
	}

	first := long[0]
	if first[ColAnalyte] != "2'FL" || first[ColConcentration] != 10.0 {
		t.Errorf("first long row = %v", first)
	}
	if first[ColSampleName] != "S1-001" || first[ColSecretor] != "Secretor" {
		t.Errorf("identifying columns not carried: %v", first)
	}
}

func TestToLong_NoMissingValues(t *testing.T) {
	wide := []map[string]interface{}{
		{ColStudyID: "S1", ColSampleName: "a", ColSecretor: "Unknown", "2'FL %": 1.0, "LNnT %": 2.0},
		{ColStudyID: "S1", ColSampleName: "b", ColSecretor: "Unknown", "2'FL %": 3.0, "LNnT %": 4.0},
	}

	long := ToLong(wide, reshapeAnalytes)
	// Equality holds exactly when nothing was missing.
	if want := len(wide) * len(reshapeAnalytes); len(long) != want {
		t.Errorf("long rows = %d, want %d", len(long), want)
	}
}

func TestToLong_DoesNotMutateWide(t *testing.T) {
	wide := reshapeRows()
	before := make([]map[string]interface{}, len(wide))
	for i, row := range wide {
		copied := make(map[string]interface{}, len(row))
		for k, v := range row {
			copied[k] = v
		}
		before[i] = copied
	}

	ToLong(wide, reshapeAnalytes)

	for i := range wide {
		if !reflect.DeepEqual(wide[i], before[i]) {
			t.Fatalf("ToLong mutated wide row %d", i)
		}
	}
}

func TestReshapeRoundTrip(t *testing.T) {
	wide := reshapeRows()
	back := ToWide(ToLong(wide, reshapeAnalytes), reshapeAnalytes)

	// Samples with at least one retained cell reappear, in order.
	if len(back) != 2 {
		t.Fatalf("round-trip rows = %d, want 2", len(back))
	}
	if back[0][ColSampleName] != "S1-001" || back[1][ColSampleName] != "S1-002" {
		t.Fatalf("round-trip order = %v, %v", back[0][ColSampleName], back[1][ColSampleName])
	}

	// Every retained numeric cell is recovered exactly.
	if got := back[0]["2'FL %"]; got != 10.0 {
		t.Errorf("round-trip 2'FL = %v, want 10.0", got)
	}
	if got := back[0]["LNnT %"]; got != 5.0 {
		t.Errorf("round-trip LNnT = %v, want 5.0", got)
	}
	if got := back[1]["2'FL %"]; got != 20.0 {
		t.Errorf("round-trip 2'FL = %v, want 20.0", got)
	}
	// A dropped cell stays absent rather than resurfacing as zero.
	if v, present := back[1]["LNnT %"]; present {
		t.Errorf("dropped cell reappeared as %v", v)
	}
}
