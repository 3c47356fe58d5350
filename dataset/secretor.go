package dataset

import "strings"

// Label is the derived secretor status. The domain is closed: every
// raw code, however dirty, maps to one of the three values.
type Label string

const (
	Secretor    Label = "Secretor"
	NonSecretor Label = "Non-secretor"
	Unknown     Label = "Unknown"
)

// DeriveSecretorLabel classifies a raw secretor code. The function is
// total: the known codes 1/"1"/"1.0" and 0/"0"/"0.0" map to Secretor
// and Non-secretor, and every other value, whatever its type, maps to
// Unknown. Composition percentages are always computed from this
// label, never from the raw code.
func DeriveSecretorLabel(raw interface{}) Label {
	if raw == nil {
		return Unknown
	}
	if f, ok := toFloat64(raw); ok {
		switch f {
		case 1:
			return Secretor
		case 0:
			return NonSecretor
		}
		return Unknown
	}
	if s, ok := raw.(string); ok {
		switch strings.TrimSpace(s) {
		case "1", "1.0":
			return Secretor
		case "0", "0.0":
			return NonSecretor
		}
	}
	return Unknown
}

// AnnotateSecretor returns a copy of rows with the derived
// "Secretor Status" column added from the raw "Secretor" column. The
// input rows are left untouched.
func AnnotateSecretor(rows []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		annotated := make(map[string]interface{}, len(row)+1)
		for k, v := range row {
			annotated[k] = v
		}
		annotated[ColSecretor] = string(DeriveSecretorLabel(row[ColSecretorRaw]))
		out = append(out, annotated)
	}
	return out
}
