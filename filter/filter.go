// Package filter applies composable row predicates to any of the
// dataset tables.
//
// Predicates are total: a row either matches or it does not, and a
// missing field never excludes a row from consideration for the other
// fields. Filters are stateless, never mutate their input, and
// compose by conjunction when stacked:
//
//	p := filter.And(
//		filter.StudyIn("S1", "S4"),
//		filter.SecretorIn(dataset.Secretor),
//		filter.TextSearch("preterm"),
//	)
//	subset := filter.Apply(ds.Samples, p)
package filter

import (
	"fmt"
	"strings"

	"github.com/hmolab/milkstat/dataset"
)

// Predicate decides whether a row is kept. A nil Predicate is the
// identity filter.
type Predicate interface {
	Match(row map[string]interface{}) bool
}

// TextFields is the fixed set of metadata fields searched by
// TextSearch. Absent or null fields read as empty strings.
var TextFields = []string{
	dataset.ColStudyID,
	dataset.ColDescription,
	dataset.ColKeywords,
	dataset.ColPopulation,
	dataset.ColSampleType,
	dataset.ColCollection,
}

type studyIn map[string]struct{}

// StudyIn keeps rows whose study identifier is in the given set. An
// empty set is the identity filter, matching the dashboard's "All"
// selection.
func StudyIn(ids ...string) Predicate {
	if len(ids) == 0 {
		return nil
	}
	set := make(studyIn, len(ids))
	for _, id := range ids {
		set[strings.TrimSpace(id)] = struct{}{}
	}
	return set
}

func (s studyIn) Match(row map[string]interface{}) bool {
	_, ok := s[fieldText(row, dataset.ColStudyID)]
	return ok
}

type secretorIn map[string]struct{}

// SecretorIn keeps rows whose derived secretor label is in the given
// set. An empty set is the identity filter.
func SecretorIn(labels ...dataset.Label) Predicate {
	if len(labels) == 0 {
		return nil
	}
	set := make(secretorIn, len(labels))
	for _, l := range labels {
		set[string(l)] = struct{}{}
	}
	return set
}

func (s secretorIn) Match(row map[string]interface{}) bool {
	_, ok := s[fieldText(row, dataset.ColSecretor)]
	return ok
}

type textSearch string

// TextSearch keeps rows where the query appears, case-insensitively,
// as a substring of any field in TextFields. The empty (or
// whitespace-only) query is the identity filter.
func TextSearch(query string) Predicate {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return textSearch(strings.ToLower(query))
}

func (t textSearch) Match(row map[string]interface{}) bool {
	for _, field := range TextFields {
		if strings.Contains(strings.ToLower(fieldText(row, field)), string(t)) {
			return true
		}
	}
	return false
}

type conjunction []Predicate

// And composes predicates by conjunction. Identity (nil) predicates
// are skipped; if nothing remains, the result is again the identity.
func And(ps ...Predicate) Predicate {
	kept := make(conjunction, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func (c conjunction) Match(row map[string]interface{}) bool {
	for _, p := range c {
		if !p.Match(row) {
			return false
		}
	}
	return true
}

// Apply returns the rows matching p. The identity predicate returns
// the input slice unchanged. Applying the same predicate to the same
// table always yields the same output, the result is never larger
// than the input, and neither the slice nor its rows are modified.
func Apply(rows []map[string]interface{}, p Predicate) []map[string]interface{} {
	if p == nil {
		return rows
	}
	kept := make([]map[string]interface{}, 0)
	for _, row := range rows {
		if p.Match(row) {
			kept = append(kept, row)
		}
	}
	return kept
}

// fieldText reads a row field as text; nil and absent fields read as
// "". Numeric identifiers are rendered so they still compare against
// textual selections.
func fieldText(row map[string]interface{}, field string) string {
	v, ok := row[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprintf("%v", v)
}
