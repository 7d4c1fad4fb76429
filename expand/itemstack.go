package expand

import (
	"strconv"
	"strings"

	"github.com/packwright/mcgen"
)

// TagMarker prefixes a string item reference to denote a tag reference
// instead of a plain item.
const TagMarker = "tag!"

// ItemStack normalizes an item stack shorthand into its canonical mapping.
// Accepted forms:
//
//   - string: a plain item id, or a tag reference when prefixed with "tag!"
//   - mapping: raw passthrough
//   - 2-element sequence: (count, nested spec); count is merged into the
//     nested spec under the "count" key
func ItemStack(v mcgen.Json) (mcgen.JsonObject, error) {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, TagMarker) {
			return mcgen.JsonObject{"tag": strings.TrimPrefix(t, TagMarker)}, nil
		}
		return mcgen.JsonObject{"item": t}, nil
	case mcgen.JsonObject:
		return t, nil
	}
	seq, ok := mcgen.AsSequence(v)
	if !ok {
		return nil, mcgen.UnknownShapeAt("expand.ItemStack", v)
	}
	if len(seq) != 2 {
		return nil, mcgen.InvalidArityAt("expand.ItemStack",
			"an item stack as a sequence must have two entries (count, item)")
	}
	stack, err := ItemStack(seq[1])
	if err != nil {
		return nil, err
	}
	out := mcgen.JsonObject{"count": seq[0]}
	for k, val := range stack {
		out[k] = val
	}
	return out, nil
}

// ItemStackList normalizes a single stack shorthand or a sequence of them
// into a list of canonical stacks. Each sequence element is itself a stack
// shorthand, so a 2-element element is a (count, spec) tuple, not nesting.
func ItemStackList(v mcgen.Json) ([]mcgen.JsonObject, error) {
	switch v.(type) {
	case string, mcgen.JsonObject:
		stack, err := ItemStack(v)
		if err != nil {
			return nil, err
		}
		return []mcgen.JsonObject{stack}, nil
	}
	seq, ok := mcgen.AsSequence(v)
	if !ok {
		return nil, mcgen.UnknownShapeAt("expand.ItemStackList", v)
	}
	// A 2-element sequence opening with a count is one (count, spec) tuple,
	// not a list of two stacks.
	if len(seq) == 2 && isCount(seq[0]) {
		stack, err := ItemStack(v)
		if err != nil {
			return nil, err
		}
		return []mcgen.JsonObject{stack}, nil
	}
	out := make([]mcgen.JsonObject, 0, len(seq))
	for _, e := range seq {
		stack, err := ItemStack(e)
		if err != nil {
			return nil, err
		}
		out = append(out, stack)
	}
	return out, nil
}

func isCount(v mcgen.Json) bool {
	switch v.(type) {
	case int, int32, int64, float64:
		return true
	}
	return false
}

// ItemStackDict normalizes a keyed mapping of stack shorthands, as used by
// shaped recipe patterns. A bare string becomes a single entry keyed by
// defaultKey (conventionally "#").
func ItemStackDict(v mcgen.Json, defaultKey string) (mcgen.JsonObject, error) {
	switch t := v.(type) {
	case mcgen.JsonObject:
		out := make(mcgen.JsonObject, len(t))
		for k, e := range t {
			stack, err := ItemStack(e)
			if err != nil {
				return nil, err
			}
			out[k] = stack
		}
		return out, nil
	case string:
		stack, err := ItemStack(t)
		if err != nil {
			return nil, err
		}
		return mcgen.JsonObject{defaultKey: stack}, nil
	default:
		return nil, mcgen.UnknownShapeAt("expand.ItemStackDict", v)
	}
}

// ItemModelTextures normalizes item model texture shorthand: a string becomes
// layer0, a sequence becomes layer0..layerN, a mapping passes through.
func ItemModelTextures(v mcgen.Json) (mcgen.JsonObject, error) {
	switch t := v.(type) {
	case string:
		return mcgen.JsonObject{"layer0": t}, nil
	case mcgen.JsonObject:
		return t, nil
	}
	seq, ok := mcgen.AsSequence(v)
	if !ok {
		return nil, mcgen.UnknownShapeAt("expand.ItemModelTextures", v)
	}
	out := make(mcgen.JsonObject, len(seq))
	for i, e := range seq {
		out["layer"+strconv.Itoa(i)] = e
	}
	return out, nil
}
