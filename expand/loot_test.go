package expand_test

import (
	"reflect"
	"testing"

	"github.com/packwright/mcgen"
	"github.com/packwright/mcgen/expand"
)

func TestLootPools_StringBlockPool(t *testing.T) {
	got, err := expand.LootPools("minecraft:dirt", "block")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []mcgen.JsonObject{{
		"name":       "loot_pool",
		"rolls":      1,
		"entries":    []mcgen.JsonObject{{"type": "minecraft:item", "name": "minecraft:dirt"}},
		"conditions": []mcgen.JsonObject{{"condition": "minecraft:survives_explosion"}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLootPools_NonBlockHasNoImplicitConditions(t *testing.T) {
	got, err := expand.LootPools("minecraft:bone", "entity")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, ok := got[0]["conditions"]; ok {
		t.Fatalf("non-block pools must not gain implicit conditions: %v", got[0])
	}
}

func TestLootPools_MappingFields(t *testing.T) {
	got, err := expand.LootPools(mcgen.JsonObject{
		"rolls":       3,
		"bonus_rolls": 1,
		"entries":     "minecraft:diamond",
		"conditions":  "minecraft:killed_by_player",
		"functions":   "minecraft:explosion_decay",
	}, "block")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []mcgen.JsonObject{{
		"name":        "loot_pool",
		"rolls":       3,
		"bonus_rolls": 1,
		"entries":     []mcgen.JsonObject{{"type": "minecraft:item", "name": "minecraft:diamond"}},
		"conditions":  []mcgen.JsonObject{{"condition": "minecraft:killed_by_player"}},
		"functions":   []mcgen.JsonObject{{"function": "minecraft:explosion_decay"}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLootPools_MappingDefaults(t *testing.T) {
	in := mcgen.JsonObject{"entries": "minecraft:stick"}
	got, err := expand.LootPools(in, "entity")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	pool := got[0]
	if pool["rolls"] != 1 {
		t.Fatalf("rolls must default to 1, got %v", pool["rolls"])
	}
	for _, key := range []string{"bonus_rolls", "functions", "conditions"} {
		if _, ok := pool[key]; ok {
			t.Fatalf("absent %s must be omitted, got %v", key, pool)
		}
	}
}

func TestLootPools_SequenceFlattens(t *testing.T) {
	got, err := expand.LootPools([]any{"a", []any{"b"}}, "entity")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two pools, got %v", got)
	}
}

func TestLootPools_UnknownShape(t *testing.T) {
	_, err := expand.LootPools(7, "block")
	if err == nil {
		t.Fatalf("expected unknown_shape error")
	}
	iss, _ := mcgen.AsIssues(err)
	if iss[0].Path != "expand.LootPools" {
		t.Fatalf("issue must name the dialect, got %v", iss)
	}
}

func TestLootEntries_TagAndItem(t *testing.T) {
	got, err := expand.LootEntries("tag!forge:ores")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []mcgen.JsonObject{{"type": "minecraft:tag", "name": "forge:ores"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLootEntries_NestedSequenceFlattens(t *testing.T) {
	got, err := expand.LootEntries([]any{"a", []any{"b", []any{"c"}}})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %v", got)
	}
}

func TestLootEntries_MappingDefaultsAndOmission(t *testing.T) {
	got, err := expand.LootEntries(mcgen.JsonObject{
		"name":       "minecraft:gravel",
		"weight":     10,
		"conditions": "minecraft:random_chance",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	entry := got[0]
	if entry["type"] != "item" {
		t.Fatalf("type must default to item, got %v", entry["type"])
	}
	if !reflect.DeepEqual(entry["conditions"], []mcgen.JsonObject{{"condition": "minecraft:random_chance"}}) {
		t.Fatalf("conditions not normalized: %v", entry)
	}
	for _, key := range []string{"children", "expand", "functions", "quality"} {
		if _, ok := entry[key]; ok {
			t.Fatalf("absent %s must be omitted, got %v", key, entry)
		}
	}
}

func TestLootEntries_CanonicalMappingIdempotent(t *testing.T) {
	canonical := mcgen.JsonObject{
		"type":   "minecraft:item",
		"name":   "minecraft:stone",
		"weight": 1,
	}
	once, err := expand.LootEntries(canonical)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	twice, err := expand.LootEntries(once[0])
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("canonical mapping must be a fixed point: %v vs %v", once, twice)
	}
}

func TestLootFunctionsAndConditions(t *testing.T) {
	fns, err := expand.LootFunctions([]any{"a", mcgen.JsonObject{"function": "b", "count": 2}})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []mcgen.JsonObject{{"function": "a"}, {"function": "b", "count": 2}}
	if !reflect.DeepEqual(fns, want) {
		t.Fatalf("got %v want %v", fns, want)
	}

	conds, err := expand.LootConditions("minecraft:survives_explosion")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(conds, []mcgen.JsonObject{{"condition": "minecraft:survives_explosion"}}) {
		t.Fatalf("got %v", conds)
	}

	if _, err := expand.LootConditions(1); err == nil {
		t.Fatalf("expected unknown_shape")
	}
}

func TestLootDefaultConditions(t *testing.T) {
	if got := expand.LootDefaultConditions("block"); len(got) != 1 {
		t.Fatalf("block pools gain one implicit condition, got %v", got)
	}
	if got := expand.LootDefaultConditions("entity"); got != nil {
		t.Fatalf("other kinds gain none, got %v", got)
	}
}
