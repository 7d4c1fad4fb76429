package mcgen

// Flatten turns nested sequences of sequences into a flat list of leaf
// elements. Strings are leaves despite being iterable.
func Flatten(seq []any) []any {
	out := make([]any, 0, len(seq))
	for _, e := range seq {
		if nested, ok := AsSequence(e); ok {
			out = append(out, Flatten(nested)...)
			continue
		}
		out = append(out, e)
	}
	return out
}

// IsSequence reports whether v is a non-string sequence.
func IsSequence(v Json) bool {
	_, ok := AsSequence(v)
	return ok
}

// AsSequence returns the []any view of v when v is a non-string sequence.
// Typed slices authors commonly build ([]string, []JsonObject) are widened.
func AsSequence(v Json) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case []JsonObject:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}
