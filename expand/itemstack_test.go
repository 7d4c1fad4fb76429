package expand_test

import (
	"reflect"
	"testing"

	"github.com/packwright/mcgen"
	"github.com/packwright/mcgen/expand"
)

func TestItemStack_PlainItem(t *testing.T) {
	got, err := expand.ItemStack("minecraft:stick")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := mcgen.JsonObject{"item": "minecraft:stick"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestItemStack_TagReference(t *testing.T) {
	got, err := expand.ItemStack("tag!forge:ingots/copper")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := mcgen.JsonObject{"tag": "forge:ingots/copper"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestItemStack_MappingPassthrough(t *testing.T) {
	in := mcgen.JsonObject{"item": "minecraft:stick", "nbt": "{}"}
	got, err := expand.ItemStack(in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("mapping input must pass through, got %v", got)
	}
}

func TestItemStack_CountTuple(t *testing.T) {
	got, err := expand.ItemStack([]any{4, "tag!forge:rods/wooden"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := mcgen.JsonObject{"count": 4, "tag": "forge:rods/wooden"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestItemStack_WrongTupleArity(t *testing.T) {
	_, err := expand.ItemStack([]any{1, "a", "b"})
	if err == nil {
		t.Fatalf("expected arity error")
	}
	iss, ok := mcgen.AsIssues(err)
	if !ok || iss[0].Code != mcgen.CodeInvalidArity {
		t.Fatalf("expected invalid_arity, got %v", err)
	}
}

func TestItemStack_UnknownShape(t *testing.T) {
	_, err := expand.ItemStack(3.5)
	if err == nil {
		t.Fatalf("expected unknown_shape error")
	}
	iss, ok := mcgen.AsIssues(err)
	if !ok || iss[0].Code != mcgen.CodeUnknownShape || iss[0].Path != "expand.ItemStack" {
		t.Fatalf("expected unknown_shape at expand.ItemStack, got %v", err)
	}
}

func TestItemStackList_CountTuple(t *testing.T) {
	got, err := expand.ItemStackList([]any{2, "minecraft:stick"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []mcgen.JsonObject{{"count": 2, "item": "minecraft:stick"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestItemStackList_Single(t *testing.T) {
	got, err := expand.ItemStackList("minecraft:stick")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []mcgen.JsonObject{{"item": "minecraft:stick"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestItemStackList_Sequence(t *testing.T) {
	got, err := expand.ItemStackList([]any{"a", []any{3, "b"}, "tag!c"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []mcgen.JsonObject{{"item": "a"}, {"count": 3, "item": "b"}, {"tag": "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestItemStackDict(t *testing.T) {
	got, err := expand.ItemStackDict(mcgen.JsonObject{"S": "minecraft:stick", "P": "tag!planks"}, "#")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := mcgen.JsonObject{
		"S": mcgen.JsonObject{"item": "minecraft:stick"},
		"P": mcgen.JsonObject{"tag": "planks"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got, err = expand.ItemStackDict("minecraft:stick", "#")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want = mcgen.JsonObject{"#": mcgen.JsonObject{"item": "minecraft:stick"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	if _, err = expand.ItemStackDict([]any{"a"}, "#"); err == nil {
		t.Fatalf("expected unknown_shape for sequence input")
	}
}

func TestItemModelTextures(t *testing.T) {
	got, err := expand.ItemModelTextures("mod:item/thing")
	if err != nil || !reflect.DeepEqual(got, mcgen.JsonObject{"layer0": "mod:item/thing"}) {
		t.Fatalf("got %v err %v", got, err)
	}

	got, err = expand.ItemModelTextures([]any{"a", "b"})
	if err != nil || !reflect.DeepEqual(got, mcgen.JsonObject{"layer0": "a", "layer1": "b"}) {
		t.Fatalf("got %v err %v", got, err)
	}

	raw := mcgen.JsonObject{"particle": "x"}
	got, err = expand.ItemModelTextures(raw)
	if err != nil || !reflect.DeepEqual(got, raw) {
		t.Fatalf("got %v err %v", got, err)
	}

	if _, err = expand.ItemModelTextures(1); err == nil {
		t.Fatalf("expected unknown_shape")
	}
}
