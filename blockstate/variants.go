package blockstate

import "github.com/packwright/mcgen"

// SlabVariants returns the three slab states: bottom and top halves plus the
// double slab, which reuses the full block model.
func SlabVariants(block, blockSlab, blockSlabTop string) mcgen.JsonObject {
	return mcgen.JsonObject{
		"type=bottom": mcgen.JsonObject{"model": blockSlab},
		"type=top":    mcgen.JsonObject{"model": blockSlabTop},
		"type=double": mcgen.JsonObject{"model": block},
	}
}

// StairsVariants returns all 40 stair states: 2 halves x 4 facings x 5
// shapes. The outer/inner left and right shapes are deliberately asymmetric
// mirror images, not simple rotations; the rotation table below is the
// literal convention the game expects.
func StairsVariants(stairs, stairsInner, stairsOuter string) mcgen.JsonObject {
	return mcgen.JsonObject{
		"facing=east,half=bottom,shape=straight":     mcgen.JsonObject{"model": stairs},
		"facing=west,half=bottom,shape=straight":     mcgen.JsonObject{"model": stairs, "y": 180, "uvlock": true},
		"facing=south,half=bottom,shape=straight":    mcgen.JsonObject{"model": stairs, "y": 90, "uvlock": true},
		"facing=north,half=bottom,shape=straight":    mcgen.JsonObject{"model": stairs, "y": 270, "uvlock": true},
		"facing=east,half=bottom,shape=outer_right":  mcgen.JsonObject{"model": stairsOuter},
		"facing=west,half=bottom,shape=outer_right":  mcgen.JsonObject{"model": stairsOuter, "y": 180, "uvlock": true},
		"facing=south,half=bottom,shape=outer_right": mcgen.JsonObject{"model": stairsOuter, "y": 90, "uvlock": true},
		"facing=north,half=bottom,shape=outer_right": mcgen.JsonObject{"model": stairsOuter, "y": 270, "uvlock": true},
		"facing=east,half=bottom,shape=outer_left":   mcgen.JsonObject{"model": stairsOuter, "y": 270, "uvlock": true},
		"facing=west,half=bottom,shape=outer_left":   mcgen.JsonObject{"model": stairsOuter, "y": 90, "uvlock": true},
		"facing=south,half=bottom,shape=outer_left":  mcgen.JsonObject{"model": stairsOuter},
		"facing=north,half=bottom,shape=outer_left":  mcgen.JsonObject{"model": stairsOuter, "y": 180, "uvlock": true},
		"facing=east,half=bottom,shape=inner_right":  mcgen.JsonObject{"model": stairsInner},
		"facing=west,half=bottom,shape=inner_right":  mcgen.JsonObject{"model": stairsInner, "y": 180, "uvlock": true},
		"facing=south,half=bottom,shape=inner_right": mcgen.JsonObject{"model": stairsInner, "y": 90, "uvlock": true},
		"facing=north,half=bottom,shape=inner_right": mcgen.JsonObject{"model": stairsInner, "y": 270, "uvlock": true},
		"facing=east,half=bottom,shape=inner_left":   mcgen.JsonObject{"model": stairsInner, "y": 270, "uvlock": true},
		"facing=west,half=bottom,shape=inner_left":   mcgen.JsonObject{"model": stairsInner, "y": 90, "uvlock": true},
		"facing=south,half=bottom,shape=inner_left":  mcgen.JsonObject{"model": stairsInner},
		"facing=north,half=bottom,shape=inner_left":  mcgen.JsonObject{"model": stairsInner, "y": 180, "uvlock": true},
		"facing=east,half=top,shape=straight":        mcgen.JsonObject{"model": stairs, "x": 180, "uvlock": true},
		"facing=west,half=top,shape=straight":        mcgen.JsonObject{"model": stairs, "x": 180, "y": 180, "uvlock": true},
		"facing=south,half=top,shape=straight":       mcgen.JsonObject{"model": stairs, "x": 180, "y": 90, "uvlock": true},
		"facing=north,half=top,shape=straight":       mcgen.JsonObject{"model": stairs, "x": 180, "y": 270, "uvlock": true},
		"facing=east,half=top,shape=outer_right":     mcgen.JsonObject{"model": stairsOuter, "x": 180, "y": 90, "uvlock": true},
		"facing=west,half=top,shape=outer_right":     mcgen.JsonObject{"model": stairsOuter, "x": 180, "y": 270, "uvlock": true},
		"facing=south,half=top,shape=outer_right":    mcgen.JsonObject{"model": stairsOuter, "x": 180, "y": 180, "uvlock": true},
		"facing=north,half=top,shape=outer_right":    mcgen.JsonObject{"model": stairsOuter, "x": 180, "uvlock": true},
		"facing=east,half=top,shape=outer_left":      mcgen.JsonObject{"model": stairsOuter, "x": 180, "uvlock": true},
		"facing=west,half=top,shape=outer_left":      mcgen.JsonObject{"model": stairsOuter, "x": 180, "y": 180, "uvlock": true},
		"facing=south,half=top,shape=outer_left":     mcgen.JsonObject{"model": stairsOuter, "x": 180, "y": 90, "uvlock": true},
		"facing=north,half=top,shape=outer_left":     mcgen.JsonObject{"model": stairsOuter, "x": 180, "y": 270, "uvlock": true},
		"facing=east,half=top,shape=inner_right":     mcgen.JsonObject{"model": stairsInner, "x": 180, "y": 90, "uvlock": true},
		"facing=west,half=top,shape=inner_right":     mcgen.JsonObject{"model": stairsInner, "x": 180, "y": 270, "uvlock": true},
		"facing=south,half=top,shape=inner_right":    mcgen.JsonObject{"model": stairsInner, "x": 180, "y": 180, "uvlock": true},
		"facing=north,half=top,shape=inner_right":    mcgen.JsonObject{"model": stairsInner, "x": 180, "uvlock": true},
		"facing=east,half=top,shape=inner_left":      mcgen.JsonObject{"model": stairsInner, "x": 180, "uvlock": true},
		"facing=west,half=top,shape=inner_left":      mcgen.JsonObject{"model": stairsInner, "x": 180, "y": 180, "uvlock": true},
		"facing=south,half=top,shape=inner_left":     mcgen.JsonObject{"model": stairsInner, "x": 180, "y": 90, "uvlock": true},
		"facing=north,half=top,shape=inner_left":     mcgen.JsonObject{"model": stairsInner, "x": 180, "y": 270, "uvlock": true},
	}
}

// FenceGateVariants returns all 16 fence gate states: 4 facings x in_wall x
// open. Facing south is the zero rotation; west/north/east step by 90.
func FenceGateVariants(gate, gateOpen, gateWall, gateWallOpen string) mcgen.JsonObject {
	return mcgen.JsonObject{
		"facing=south,in_wall=false,open=false": mcgen.JsonObject{"model": gate, "uvlock": true},
		"facing=west,in_wall=false,open=false":  mcgen.JsonObject{"model": gate, "uvlock": true, "y": 90},
		"facing=north,in_wall=false,open=false": mcgen.JsonObject{"model": gate, "uvlock": true, "y": 180},
		"facing=east,in_wall=false,open=false":  mcgen.JsonObject{"model": gate, "uvlock": true, "y": 270},
		"facing=south,in_wall=false,open=true":  mcgen.JsonObject{"model": gateOpen, "uvlock": true},
		"facing=west,in_wall=false,open=true":   mcgen.JsonObject{"model": gateOpen, "uvlock": true, "y": 90},
		"facing=north,in_wall=false,open=true":  mcgen.JsonObject{"model": gateOpen, "uvlock": true, "y": 180},
		"facing=east,in_wall=false,open=true":   mcgen.JsonObject{"model": gateOpen, "uvlock": true, "y": 270},
		"facing=south,in_wall=true,open=false":  mcgen.JsonObject{"model": gateWall, "uvlock": true},
		"facing=west,in_wall=true,open=false":   mcgen.JsonObject{"model": gateWall, "uvlock": true, "y": 90},
		"facing=north,in_wall=true,open=false":  mcgen.JsonObject{"model": gateWall, "uvlock": true, "y": 180},
		"facing=east,in_wall=true,open=false":   mcgen.JsonObject{"model": gateWall, "uvlock": true, "y": 270},
		"facing=south,in_wall=true,open=true":   mcgen.JsonObject{"model": gateWallOpen, "uvlock": true},
		"facing=west,in_wall=true,open=true":    mcgen.JsonObject{"model": gateWallOpen, "uvlock": true, "y": 90},
		"facing=north,in_wall=true,open=true":   mcgen.JsonObject{"model": gateWallOpen, "uvlock": true, "y": 180},
		"facing=east,in_wall=true,open=true":    mcgen.JsonObject{"model": gateWallOpen, "uvlock": true, "y": 270},
	}
}
