package expand

import "github.com/packwright/mcgen"

// RecipeConditions normalizes recipe condition shorthand into a list of
// condition mappings. A string becomes {"type": s}, a mapping passes through
// wrapped in a single-element list, and a sequence is flattened exactly one
// level: nested sequences inside it are rejected. nil maps to nil so absent
// condition fields stay absent.
func RecipeConditions(v mcgen.Json) ([]mcgen.JsonObject, error) {
	return recipeConditions(v, false)
}

func recipeConditions(v mcgen.Json, strict bool) ([]mcgen.JsonObject, error) {
	if v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case string:
		return []mcgen.JsonObject{{"type": t}}, nil
	case mcgen.JsonObject:
		return []mcgen.JsonObject{t}, nil
	}
	if seq, ok := mcgen.AsSequence(v); ok && !strict {
		out := make([]mcgen.JsonObject, 0, len(seq))
		for _, e := range seq {
			conditions, err := recipeConditions(e, true)
			if err != nil {
				return nil, err
			}
			out = append(out, conditions...)
		}
		return out, nil
	}
	return nil, mcgen.UnknownShapeAt("expand.RecipeConditions", v)
}
