package expand

import (
	"strconv"

	"github.com/packwright/mcgen"
)

// LangParts merges language entry shorthand into one key/value mapping. The
// input is walked positionally: a string consumes the next element as its
// value, a mapping is merged as-is, and a nested sequence is merged
// recursively. Later keys overwrite earlier ones.
func LangParts(parts []mcgen.Json) (map[string]string, error) {
	entries := make(map[string]string)
	if err := langParts(parts, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func langParts(parts []mcgen.Json, entries map[string]string) error {
	i := 0
	for i < len(parts) {
		switch part := parts[i].(type) {
		case string:
			if i+1 >= len(parts) {
				return mcgen.InvalidArityAt("expand.LangParts",
					"language key "+strconv.Quote(part)+" has no adjacent value")
			}
			value, ok := parts[i+1].(string)
			if !ok {
				return mcgen.UnknownShapeAt("expand.LangParts", parts[i+1])
			}
			entries[part] = value
			i++
		case mcgen.JsonObject:
			for k, v := range part {
				s, ok := v.(string)
				if !ok {
					return mcgen.UnknownShapeAt("expand.LangParts", v)
				}
				entries[k] = s
			}
		case map[string]string:
			for k, v := range part {
				entries[k] = v
			}
		default:
			seq, ok := mcgen.AsSequence(parts[i])
			if !ok {
				return mcgen.UnknownShapeAt("expand.LangParts", parts[i])
			}
			if err := langParts(seq, entries); err != nil {
				return err
			}
		}
		i++
	}
	return nil
}
