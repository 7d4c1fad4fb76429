// Package mcgen expands terse, author-friendly descriptions of voxel-game
// data-pack assets (block states, item models, recipes, loot tables, language
// files) into fully-expanded JSON documents:
//
// - Resource identifier resolution from flexible input forms (Location, SimpleLocation)
// - Shape primitives shared by every dialect normalizer (Flatten, StrPath, Get)
// - A stable error model via Issues (normalizer name, code, printable offending value)
//
// Design policy:
// - Keep only the core API in the root package; dialect normalizers live under
//   expand/ and blockstate/, the document sink under writer/, and YAML authoring
//   import under manifest/.
// - Every normalizer is a pure function of its input: no caches, no shared
//   state, safe for concurrent use.
// - Failures are content-authoring bugs: fail fast with Issues, never
//   default-and-continue.
//
// Typical usage:
//
//	pools, err := expand.LootPools("minecraft:dirt", "block")
//	sink := writer.NewFileSink("src/main/resources")
//	err = sink.Write([]string{"data", "mymod", "loot_tables", "blocks", "dirt"},
//	    mcgen.JsonObject{"type": "minecraft:block", "pools": pools})
package mcgen
