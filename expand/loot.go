package expand

import (
	"strings"

	"github.com/packwright/mcgen"
)

// LootPools normalizes loot pool shorthand into a list of canonical pools.
// A bare string becomes a single one-roll pool with an item or tag entry and
// the implicit conditions for lootType. A mapping may specify rolls,
// bonus_rolls, entries, conditions and functions, each independently
// defaulted. A sequence is one pool shorthand per element, flattened.
func LootPools(v mcgen.Json, lootType string) ([]mcgen.JsonObject, error) {
	switch t := v.(type) {
	case string:
		entries, err := LootEntries(t)
		if err != nil {
			return nil, err
		}
		pool := mcgen.JsonObject{
			"name":    "loot_pool",
			"rolls":   1,
			"entries": entries,
		}
		if conditions := LootDefaultConditions(lootType); conditions != nil {
			pool["conditions"] = conditions
		}
		return []mcgen.JsonObject{pool}, nil
	case mcgen.JsonObject:
		pool := mcgen.JsonObject{"name": "loot_pool"}
		rolls, err := mcgen.Get(t, "rolls", 1, nil)
		if err != nil {
			return nil, err
		}
		pool["rolls"] = rolls
		if err := mcgen.SetFrom(pool, t, "bonus_rolls", nil); err != nil {
			return nil, err
		}
		// A mapping without an explicit entries key is its own entries value,
		// untransformed: the default side of Get never runs the transform.
		entries, err := mcgen.Get(t, "entries", mcgen.Json(t), lift(LootEntries))
		if err != nil {
			return nil, err
		}
		pool["entries"] = entries
		if _, ok := t["conditions"]; ok {
			conditions, err := LootConditions(t["conditions"])
			if err != nil {
				return nil, err
			}
			pool["conditions"] = conditions
		} else if conditions := LootDefaultConditions(lootType); conditions != nil {
			pool["conditions"] = conditions
		}
		if err := mcgen.SetFrom(pool, t, "functions", lift(LootFunctions)); err != nil {
			return nil, err
		}
		return []mcgen.JsonObject{pool}, nil
	}
	seq, ok := mcgen.AsSequence(v)
	if !ok {
		return nil, mcgen.UnknownShapeAt("expand.LootPools", v)
	}
	out := make([]mcgen.JsonObject, 0, len(seq))
	for _, e := range seq {
		pools, err := LootPools(e, lootType)
		if err != nil {
			return nil, err
		}
		out = append(out, pools...)
	}
	return out, nil
}

// LootEntries normalizes loot entry shorthand into a list of canonical
// entries. Strings reuse the item-stack tag marker convention; sequences
// flatten arbitrarily deep; mappings are filled with defaults and passed
// through field by field.
func LootEntries(v mcgen.Json) ([]mcgen.JsonObject, error) {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, TagMarker) {
			return []mcgen.JsonObject{{"type": "minecraft:tag", "name": strings.TrimPrefix(t, TagMarker)}}, nil
		}
		return []mcgen.JsonObject{{"type": "minecraft:item", "name": t}}, nil
	case mcgen.JsonObject:
		entryType, err := mcgen.Get(t, "type", "item", nil)
		if err != nil {
			return nil, err
		}
		entry := mcgen.JsonObject{"type": entryType}
		if err := mcgen.SetFrom(entry, t, "conditions", lift(LootConditions)); err != nil {
			return nil, err
		}
		if err := mcgen.SetFrom(entry, t, "functions", lift(LootFunctions)); err != nil {
			return nil, err
		}
		for _, key := range []string{"name", "children", "expand", "weight", "quality"} {
			if err := mcgen.SetFrom(entry, t, key, nil); err != nil {
				return nil, err
			}
		}
		return []mcgen.JsonObject{entry}, nil
	}
	seq, ok := mcgen.AsSequence(v)
	if !ok {
		return nil, mcgen.UnknownShapeAt("expand.LootEntries", v)
	}
	out := make([]mcgen.JsonObject, 0, len(seq))
	for _, e := range seq {
		entries, err := LootEntries(e)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

// LootFunctions normalizes loot function shorthand: a string is a function
// name, a mapping is raw data, a sequence recurses and flattens.
func LootFunctions(v mcgen.Json) ([]mcgen.JsonObject, error) {
	switch t := v.(type) {
	case string:
		return []mcgen.JsonObject{{"function": t}}, nil
	case mcgen.JsonObject:
		return []mcgen.JsonObject{t}, nil
	}
	seq, ok := mcgen.AsSequence(v)
	if !ok {
		return nil, mcgen.UnknownShapeAt("expand.LootFunctions", v)
	}
	out := make([]mcgen.JsonObject, 0, len(seq))
	for _, e := range seq {
		functions, err := LootFunctions(e)
		if err != nil {
			return nil, err
		}
		out = append(out, functions...)
	}
	return out, nil
}

// LootConditions normalizes loot condition shorthand: a string is a condition
// name, a mapping is raw data, a sequence recurses and flattens.
func LootConditions(v mcgen.Json) ([]mcgen.JsonObject, error) {
	switch t := v.(type) {
	case string:
		return []mcgen.JsonObject{{"condition": t}}, nil
	case mcgen.JsonObject:
		return []mcgen.JsonObject{t}, nil
	}
	seq, ok := mcgen.AsSequence(v)
	if !ok {
		return nil, mcgen.UnknownShapeAt("expand.LootConditions", v)
	}
	out := make([]mcgen.JsonObject, 0, len(seq))
	for _, e := range seq {
		conditions, err := LootConditions(e)
		if err != nil {
			return nil, err
		}
		out = append(out, conditions...)
	}
	return out, nil
}

// LootDefaultConditions returns the implicit conditions for a pool kind.
// Block pools survive explosions; other kinds get none.
func LootDefaultConditions(lootType string) []mcgen.JsonObject {
	if lootType == "block" {
		return []mcgen.JsonObject{{"condition": "minecraft:survives_explosion"}}
	}
	return nil
}

// lift adapts a dialect normalizer to the Get/SetFrom transform signature.
func lift(fn func(mcgen.Json) ([]mcgen.JsonObject, error)) func(mcgen.Json) (mcgen.Json, error) {
	return func(v mcgen.Json) (mcgen.Json, error) {
		out, err := fn(v)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}
