package feed

import "encoding/json"

// Tolerant accessors over raw decoded values. A type mismatch is never
// a panic or a decode error; callers turn a false return into an
// invalid_format violation so it lands in the report like any other
// defect.

func rawString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// rawNumber accepts the numeric shapes different decoders produce:
// float64 from encoding/json, int from yaml.v3, json.Number when the
// caller decodes with UseNumber.
func rawNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func rawObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func rawArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}
