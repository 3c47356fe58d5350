package dataset

import "testing"

func TestCollapseStudies(t *testing.T) {
	rows := []map[string]interface{}{
		{ColStudyID: "S1", "Institution": "Univ A", ColLatitude: 42.0, ColLongitude: -71.0},
		{ColStudyID: "S1", "Institution": "Univ A Annex", ColLatitude: 44.0, ColLongitude: -73.0},
		{ColStudyID: "S2", "Institution": "Univ B", ColLatitude: 55.7, ColLongitude: 13.2},
		{ColStudyID: nil, "Institution": "Orphan"},
	}

	collapsed := CollapseStudies(rows, ColStudyID)

	if len(collapsed) != 2 {
		t.Fatalf("collapsed rows = %d, want 2", len(collapsed))
	}

	s1 := collapsed[0]
	if s1[ColStudyID] != "S1" {
		t.Fatalf("first collapsed study = %v, want S1 (first-seen order)", s1[ColStudyID])
	}
	// Numeric fields take the mean; that reduction is the documented
	// policy, not a join artifact.
	if got := s1[ColLatitude]; got != 43.0 {
		t.Errorf("latitude = %v, want 43.0", got)
	}
	if got := s1[ColLongitude]; got != -72.0 {
		t.Errorf("longitude = %v, want -72.0", got)
	}
	// Text fields keep the first non-null value.
	if got := s1["Institution"]; got != "Univ A" {
		t.Errorf("institution = %v, want Univ A", got)
	}
}

func TestCollapseStudies_NumericKeyMatchesText(t *testing.T) {
	rows := []map[string]interface{}{
		{ColStudyID: 12.0, ColLatitude: 10.0},
		{ColStudyID: "12", ColLatitude: 20.0},
	}

	collapsed := CollapseStudies(rows, ColStudyID)
	if len(collapsed) != 1 {
		t.Fatalf("collapsed rows = %d, want 1", len(collapsed))
	}
	if got := collapsed[0][ColLatitude]; got != 15.0 {
		t.Errorf("latitude = %v, want 15.0", got)
	}
}

func TestLeftJoin(t *testing.T) {
	left := []map[string]interface{}{
		{ColStudyID: "S1", ColSampleName: "S1-001"},
		{ColStudyID: "S1", ColSampleName: "S1-002"},
		{ColStudyID: "S3", ColSampleName: "S3-001"},
		{ColStudyID: nil, ColSampleName: "X-001"},
	}
	right := []map[string]interface{}{
		{ColStudyID: "S1", ColDescription: "Preterm infants"},
		{ColStudyID: "S2", ColDescription: "Term cohort"},
	}

	joined := LeftJoin(left, right, ColStudyID)

	// Every left row appears exactly once, matched or not.
	if len(joined) != len(left) {
		t.Fatalf("joined rows = %d, want %d", len(joined), len(left))
	}

	if got := joined[0][ColDescription]; got != "Preterm infants" {
		t.Errorf("matched description = %v", got)
	}
	// Unmatched rows carry explicit nil right-side columns.
	for _, i := range []int{2, 3} {
		v, present := joined[i][ColDescription]
		if !present {
			t.Errorf("row %d: right-side column absent, want explicit nil", i)
		}
		if v != nil {
			t.Errorf("row %d: description = %v, want nil", i, v)
		}
	}

	// Inputs are never mutated.
	if _, ok := left[0][ColDescription]; ok {
		t.Error("LeftJoin mutated its left input")
	}
}

func TestLeftJoin_DuplicateRightKey(t *testing.T) {
	left := []map[string]interface{}{{ColStudyID: "S1"}}
	right := []map[string]interface{}{
		{ColStudyID: "S1", ColDescription: "first"},
		{ColStudyID: "S1", ColDescription: "second"},
	}

	joined := LeftJoin(left, right, ColStudyID)
	if len(joined) != 1 {
		t.Fatalf("joined rows = %d, want 1", len(joined))
	}
	if got := joined[0][ColDescription]; got != "first" {
		t.Errorf("description = %v, want first row to win", got)
	}
}
