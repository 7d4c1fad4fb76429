// Package writer is the document sink: it persists canonical documents as
// indented JSON files tagged with a generation marker, and can later sweep
// those files back out of a resource tree.
package writer

import (
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/iancoleman/orderedmap"

	"github.com/packwright/mcgen"
)

// Marker tags every generated document so Clean can tell generated files from
// handwritten ones.
const Marker = "This file was automatically created by mcgen"

// Sink accepts path segments and a normalized document and persists it. Each
// write is independent; implementations need no coordination across calls.
type Sink interface {
	Write(pathParts []string, data mcgen.JsonObject) error
}

// FileSink writes documents beneath a root directory, creating missing
// directories, injecting the marker as the first key, stripping absent
// markers, and serializing with 2-space indentation.
type FileSink struct {
	root string
}

// NewFileSink returns a FileSink rooted at root (conventionally
// "src/main/resources").
func NewFileSink(root string) *FileSink {
	return &FileSink{root: root}
}

func (s *FileSink) Write(pathParts []string, data mcgen.JsonObject) error {
	stripped, err := StripAbsent(data)
	if err != nil {
		return err
	}
	body, _ := stripped.(mcgen.JsonObject)

	// Marker first, remaining keys in sorted order, so regenerated files only
	// differ where their content does.
	doc := orderedmap.New()
	doc.Set("__comment__", Marker)
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		doc.Set(k, body[k])
	}

	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(append([]string{s.root}, pathParts...)...) + ".json"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

// StripAbsent recursively removes mapping entries and sequence elements whose
// value is the absent marker (nil). A literal nil at the top level has no
// wrapping container to drop it from; that is a programming error and fails
// loudly.
func StripAbsent(v mcgen.Json) (mcgen.Json, error) {
	if v == nil {
		return nil, mcgen.AbsentValueAt("writer.StripAbsent",
			"absent marker reached the document root")
	}
	return stripAbsent(v), nil
}

func stripAbsent(v mcgen.Json) mcgen.Json {
	if m, ok := v.(mcgen.JsonObject); ok {
		out := make(mcgen.JsonObject, len(m))
		for k, e := range m {
			if e == nil {
				continue
			}
			out[k] = stripAbsent(e)
		}
		return out
	}
	if seq, ok := mcgen.AsSequence(v); ok {
		out := make([]any, 0, len(seq))
		for _, e := range seq {
			if e == nil {
				continue
			}
			out = append(out, stripAbsent(e))
		}
		return out
	}
	return v
}

// markerLine is the serialized form of the marker entry as it appears in
// generated files; Clean matches on it.
func markerLine() string {
	return `"__comment__": "` + Marker + `"`
}
