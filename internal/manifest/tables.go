package manifest

import "github.com/edgeforge/glbgen/internal/doodads"

// Web paths the client resolves assets against.
const (
	texturePathPrefix = "/assets/textures/terrain"
	modelPathPrefix   = "/assets/models/doodads"
)

// textureSources maps texture base names to their Polyhaven source
// pages. Unlisted textures fall back to the site root.
var textureSources = map[string]string{
	"grass_light":    "https://polyhaven.com/a/sparse_grass",
	"dirt_brown":     "https://polyhaven.com/a/dirt_floor",
	"rock_gray":      "https://polyhaven.com/a/rock_surface",
	"grass_dirt_mix": "https://polyhaven.com/a/coast_sand_rocks_02",
	"vines":          "https://polyhaven.com/a/bark_willow_02",
	"grass_dark":     "https://polyhaven.com/a/leafy_grass",
	"rock_rough":     "https://polyhaven.com/a/rock_06",
	"leaves":         "https://polyhaven.com/a/forest_leaves_02",
	"dirt_desert":    "https://polyhaven.com/a/red_sand",
	"sand_desert":    "https://polyhaven.com/a/brown_mud_03",
	"rock_desert":    "https://polyhaven.com/a/volcanic_rock_tiles",
	"grass_green":    "https://polyhaven.com/a/aerial_grass_rock",
	"snow_clean":     "https://polyhaven.com/a/snow_02",
	"ice":            "https://polyhaven.com/a/snow_04",
	"dirt_frozen":    "https://polyhaven.com/a/sandy_gravel_02",
	"metal_platform": "https://polyhaven.com/a/metal_plate",
	"blight_purple":  "https://polyhaven.com/a/brown_mud_03",
	"volcanic_ash":   "https://polyhaven.com/a/volcanic_herringbone_01",
	"lava":           "https://polyhaven.com/a/rock_08",
}

// kenneyModels are the doodads sourced from the Kenney nature kit
// rather than generated procedurally.
var kenneyModels = map[string]bool{
	"tree_oak_01": true, "tree_pine_01": true, "tree_palm_01": true,
	"tree_dead_01": true, "tree_mushroom_01": true, "shrub_small_01": true,
	"bush_round_01": true, "grass_tufts_01": true,
	"rock_large_01": true, "rock_cluster_01": true, "rock_small_01": true,
	"rock_cliff_01": true, "rock_crystal_01": true, "rock_desert_01": true,
	"fence_01": true, "ruins_01": true, "pillar_stone_01": true,
	"signpost_01": true, "bridge_01": true,
	"flowers_01": true, "vines_01": true, "lily_water_01": true,
	"mushrooms_01": true, "rubble_01": true, "plant_generic_01": true,
}

func textureSource(base string) string {
	if url, ok := textureSources[base]; ok {
		return url
	}
	return "https://polyhaven.com"
}

// modelInfo resolves type and description from the doodad table.
func modelInfo(stem string) (modelType, description string) {
	if d, ok := doodads.Lookup(stem); ok {
		return d.Type, d.Description
	}
	return "unknown", "Unknown model"
}

func modelAttribution(stem string) (author, sourceURL string) {
	if kenneyModels[stem] {
		return "Kenney", "https://kenney.nl/assets/nature-kit"
	}
	return "EdgeForge (procedural)", "https://github.com/edgeforge/glbgen"
}
