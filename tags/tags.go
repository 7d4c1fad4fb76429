// Package tags accumulates tag entries for data-pack tag files.
package tags

import "github.com/packwright/mcgen"

// Tag collects resource identifiers for one tag file, ignoring duplicates
// while preserving insertion order.
type Tag struct {
	replace bool
	values  []mcgen.ResourceLocation
}

// New returns an empty tag. When replace is true the generated file replaces
// lower-priority tags of the same name instead of merging into them.
func New(replace bool) *Tag {
	return &Tag{replace: replace}
}

// Add appends new entries, skipping ones already present.
func (t *Tag) Add(values ...mcgen.ResourceLocation) {
	for _, v := range values {
		if t.contains(v) {
			continue
		}
		t.values = append(t.values, v)
	}
}

func (t *Tag) contains(v mcgen.ResourceLocation) bool {
	for _, existing := range t.values {
		if existing == v {
			return true
		}
	}
	return false
}

// Values returns the accumulated entries in insertion order.
func (t *Tag) Values() []mcgen.ResourceLocation {
	return append([]mcgen.ResourceLocation(nil), t.values...)
}

// Document renders the tag as its canonical file content.
func (t *Tag) Document() mcgen.JsonObject {
	values := make([]any, 0, len(t.values))
	for _, v := range t.values {
		values = append(values, v.Join("", true))
	}
	return mcgen.JsonObject{
		"replace": t.replace,
		"values":  values,
	}
}
