// Package manifest imports author-facing YAML manifests. A manifest is a
// multi-document YAML stream; each document declares a kind (loot_table,
// lang, blockstate, tag) plus that kind's shorthand fields, and expands
// through the dialect normalizers into one generated file.
package manifest

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/packwright/mcgen"
	"github.com/packwright/mcgen/blockstate"
	"github.com/packwright/mcgen/expand"
	"github.com/packwright/mcgen/tags"
	"github.com/packwright/mcgen/writer"
)

// Import scans a multi-document YAML manifest and writes every expanded
// document through the sink. Import fails fast: the first bad document stops
// the run with no partial-document writes for it.
func Import(data []byte, sink writer.Sink) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return mcgen.Issues{{
				Path: "manifest.Import", Code: mcgen.CodeParseError,
				Message: err.Error(), Cause: err,
			}}
		}
		doc := toStringMap(node)
		if doc == nil {
			continue
		}
		if err := importDocument(doc, sink); err != nil {
			return err
		}
	}
	return nil
}

func importDocument(doc mcgen.JsonObject, sink writer.Sink) error {
	kind, _ := doc["kind"].(string)
	switch kind {
	case "loot_table":
		return importLootTable(doc, sink)
	case "lang":
		return importLang(doc, sink)
	case "blockstate":
		return importBlockstate(doc, sink)
	case "tag":
		return importTag(doc, sink)
	default:
		return mcgen.Issues{{
			Path: "manifest.Import", Code: mcgen.CodeUnknownKind,
			Message: "unknown manifest kind " + strconv.Quote(kind),
		}}
	}
}

func importLootTable(doc mcgen.JsonObject, sink writer.Sink) error {
	loc, err := docLocation(doc, "manifest.loot_table")
	if err != nil {
		return err
	}
	lootType, err := getString(doc, "loot_type", "block")
	if err != nil {
		return err
	}
	poolsIn, ok := doc["pools"]
	if !ok {
		return mcgen.InvalidArityAt("manifest.loot_table", "loot_table document requires pools")
	}
	pools, err := expand.LootPools(poolsIn, lootType)
	if err != nil {
		return err
	}
	return sink.Write(resourcePath("data", loc, "loot_tables"), mcgen.JsonObject{
		"type":  "minecraft:" + lootType,
		"pools": pools,
	})
}

func importLang(doc mcgen.JsonObject, sink writer.Sink) error {
	domain, err := getString(doc, "domain", mcgen.DefaultDomain)
	if err != nil {
		return err
	}
	language, err := getString(doc, "language", "en_us")
	if err != nil {
		return err
	}
	var parts []mcgen.Json
	switch entries := doc["entries"].(type) {
	case mcgen.JsonObject:
		parts = []mcgen.Json{entries}
	default:
		seq, ok := mcgen.AsSequence(doc["entries"])
		if !ok {
			return mcgen.UnknownShapeAt("manifest.lang", doc["entries"])
		}
		parts = seq
	}
	merged, err := expand.LangParts(parts)
	if err != nil {
		return err
	}
	document := make(mcgen.JsonObject, len(merged))
	for k, v := range merged {
		document[k] = v
	}
	return sink.Write([]string{"assets", domain, "lang", language}, document)
}

func importBlockstate(doc mcgen.JsonObject, sink writer.Sink) error {
	loc, err := docLocation(doc, "manifest.blockstate")
	if err != nil {
		return err
	}
	body, err := blockstateBody(doc)
	if err != nil {
		return err
	}
	return sink.Write(resourcePath("assets", loc, "blockstates"), body)
}

// blockstateBody picks the one declared form: raw variants, raw multipart, or
// a geometry shorthand expanded through the static tables.
func blockstateBody(doc mcgen.JsonObject) (mcgen.JsonObject, error) {
	if v, ok := doc["variants"]; ok {
		variants, ok := v.(mcgen.JsonObject)
		if !ok {
			return nil, mcgen.UnknownShapeAt("manifest.blockstate", v)
		}
		return mcgen.JsonObject{"variants": variants}, nil
	}
	if v, ok := doc["multipart"]; ok {
		seq, ok := mcgen.AsSequence(v)
		if !ok {
			return nil, mcgen.UnknownShapeAt("manifest.blockstate", v)
		}
		parts, err := blockstate.MultipartParts(seq)
		if err != nil {
			return nil, err
		}
		return mcgen.JsonObject{"multipart": parts}, nil
	}
	if v, ok := doc["slab"]; ok {
		models, err := modelFields(v, "manifest.blockstate", "block", "bottom", "top")
		if err != nil {
			return nil, err
		}
		return mcgen.JsonObject{"variants": blockstate.SlabVariants(models[0], models[1], models[2])}, nil
	}
	if v, ok := doc["stairs"]; ok {
		models, err := modelFields(v, "manifest.blockstate", "model", "inner", "outer")
		if err != nil {
			return nil, err
		}
		return mcgen.JsonObject{"variants": blockstate.StairsVariants(models[0], models[1], models[2])}, nil
	}
	if v, ok := doc["fence"]; ok {
		models, err := modelFields(v, "manifest.blockstate", "post", "side")
		if err != nil {
			return nil, err
		}
		return mcgen.JsonObject{"multipart": blockstate.FenceMultipart(models[0], models[1])}, nil
	}
	if v, ok := doc["wall"]; ok {
		models, err := modelFields(v, "manifest.blockstate", "post", "side")
		if err != nil {
			return nil, err
		}
		return mcgen.JsonObject{"multipart": blockstate.WallMultipart(models[0], models[1])}, nil
	}
	if v, ok := doc["fence_gate"]; ok {
		models, err := modelFields(v, "manifest.blockstate", "model", "open", "wall", "wall_open")
		if err != nil {
			return nil, err
		}
		return mcgen.JsonObject{"variants": blockstate.FenceGateVariants(models[0], models[1], models[2], models[3])}, nil
	}
	return nil, mcgen.InvalidArityAt("manifest.blockstate",
		"blockstate document requires one of variants, multipart, slab, stairs, fence, wall, fence_gate")
}

func importTag(doc mcgen.JsonObject, sink writer.Sink) error {
	loc, err := docLocation(doc, "manifest.tag")
	if err != nil {
		return err
	}
	replace, _ := doc["replace"].(bool)
	values, ok := mcgen.AsSequence(doc["values"])
	if !ok {
		return mcgen.UnknownShapeAt("manifest.tag", doc["values"])
	}
	tag := tags.New(replace)
	for _, v := range values {
		entry, err := mcgen.Location(v)
		if err != nil {
			return err
		}
		tag.Add(entry)
	}
	return sink.Write(resourcePath("data", loc, "tags"), tag.Document())
}

func docLocation(doc mcgen.JsonObject, at string) (mcgen.ResourceLocation, error) {
	name, ok := doc["name"]
	if !ok {
		return mcgen.ResourceLocation{}, mcgen.InvalidArityAt(at, "manifest document requires a name")
	}
	return mcgen.Location(name)
}

func resourcePath(root string, loc mcgen.ResourceLocation, category string) []string {
	return append([]string{root, loc.Domain, category}, strings.Split(loc.Path, "/")...)
}

func getString(doc mcgen.JsonObject, key, def string) (string, error) {
	v, ok := doc[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", mcgen.UnknownShapeAt("manifest."+key, v)
	}
	return s, nil
}

func modelFields(v mcgen.Json, at string, keys ...string) ([]string, error) {
	m, ok := v.(mcgen.JsonObject)
	if !ok {
		return nil, mcgen.UnknownShapeAt(at, v)
	}
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		s, ok := m[key].(string)
		if !ok {
			return nil, mcgen.InvalidArityAt(at, "geometry shorthand requires a "+strconv.Quote(key)+" model")
		}
		out = append(out, s)
	}
	return out, nil
}
