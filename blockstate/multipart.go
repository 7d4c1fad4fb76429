// Package blockstate builds the fixed combinatorial blockstate tables (slabs,
// stairs, fences, fence gates, walls) and the multipart part dialect. The
// tables are deterministic lookup-table builders; their rotation and
// mirroring layout reproduces the game's exact geometry convention.
package blockstate

import "github.com/packwright/mcgen"

// MultipartParts normalizes multipart shorthand: each element is either a
// 2-element sequence (when condition, apply model) or a bare mapping meaning
// an unconditional apply.
func MultipartParts(parts []mcgen.Json) ([]mcgen.JsonObject, error) {
	out := make([]mcgen.JsonObject, 0, len(parts))
	for _, p := range parts {
		part, err := multipartPart(p)
		if err != nil {
			return nil, err
		}
		out = append(out, part)
	}
	return out, nil
}

func multipartPart(p mcgen.Json) (mcgen.JsonObject, error) {
	if seq, ok := mcgen.AsSequence(p); ok {
		if len(seq) != 2 {
			return nil, mcgen.InvalidArityAt("blockstate.MultipartParts",
				"a conditional part must have two entries (when, apply)")
		}
		return mcgen.JsonObject{"when": seq[0], "apply": seq[1]}, nil
	}
	if m, ok := p.(mcgen.JsonObject); ok {
		return mcgen.JsonObject{"apply": m}, nil
	}
	return nil, mcgen.UnknownShapeAt("blockstate.MultipartParts", p)
}

// FenceMultipart returns the canonical multipart list for a fence: an
// unconditional post model plus four side models at 90-degree steps with
// uvlock.
func FenceMultipart(fencePost, fenceSide string) []mcgen.JsonObject {
	return []mcgen.JsonObject{
		{"apply": mcgen.JsonObject{"model": fencePost}},
		{"when": mcgen.JsonObject{"north": "true"}, "apply": mcgen.JsonObject{"model": fenceSide, "uvlock": true}},
		{"when": mcgen.JsonObject{"east": "true"}, "apply": mcgen.JsonObject{"model": fenceSide, "y": 90, "uvlock": true}},
		{"when": mcgen.JsonObject{"south": "true"}, "apply": mcgen.JsonObject{"model": fenceSide, "y": 180, "uvlock": true}},
		{"when": mcgen.JsonObject{"west": "true"}, "apply": mcgen.JsonObject{"model": fenceSide, "y": 270, "uvlock": true}},
	}
}

// WallMultipart returns the canonical multipart list for a wall: the post is
// conditional on up=true, sides follow the fence layout.
func WallMultipart(wallPost, wallSide string) []mcgen.JsonObject {
	return []mcgen.JsonObject{
		{"when": mcgen.JsonObject{"up": "true"}, "apply": mcgen.JsonObject{"model": wallPost}},
		{"when": mcgen.JsonObject{"north": "true"}, "apply": mcgen.JsonObject{"model": wallSide, "uvlock": true}},
		{"when": mcgen.JsonObject{"east": "true"}, "apply": mcgen.JsonObject{"model": wallSide, "y": 90, "uvlock": true}},
		{"when": mcgen.JsonObject{"south": "true"}, "apply": mcgen.JsonObject{"model": wallSide, "y": 180, "uvlock": true}},
		{"when": mcgen.JsonObject{"west": "true"}, "apply": mcgen.JsonObject{"model": wallSide, "y": 270, "uvlock": true}},
	}
}
