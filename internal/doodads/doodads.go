// Package doodads holds the static doodad model table and the batch
// driver that renders it into a directory of GLB files.
package doodads

import (
	"github.com/edgeforge/glbgen/pkg/geometry"
	"github.com/edgeforge/glbgen/pkg/glb"
)

// Def ties a doodad id to its shape, color and catalog metadata. The
// table is configuration data; nothing here feeds back into the
// encoder's state.
type Def struct {
	ID          string // file stem, e.g. "tree_oak_01"
	Name        string // display name carried in the scene node
	Type        string
	Description string
	Shape       geometry.ShapeSpec
	Color       [3]float32
}

// Material returns the material attached to this doodad's mesh.
func (d Def) Material() glb.Material {
	return glb.NewMaterial(d.Name+"_mat", d.Color[0], d.Color[1], d.Color[2])
}

// Table is the full doodad set, in generation order.
var Table = []Def{
	// Trees
	{"tree_oak_01", "tree_oak", "tree", "Oak tree (temperate forest)", geometry.Cylinder{Height: 8, Radius: 0.3, Segments: 8}, [3]float32{0.4, 0.3, 0.2}},
	{"tree_pine_01", "tree_pine", "tree", "Pine tree (northern/mountain)", geometry.Cylinder{Height: 12, Radius: 0.25, Segments: 6}, [3]float32{0.2, 0.4, 0.2}},
	{"tree_palm_01", "tree_palm", "tree", "Palm tree (tropical)", geometry.Cylinder{Height: 10, Radius: 0.2, Segments: 6}, [3]float32{0.5, 0.4, 0.2}},
	{"tree_dead_01", "tree_dead", "tree", "Dead tree (wasteland)", geometry.Cylinder{Height: 7, Radius: 0.25, Segments: 6}, [3]float32{0.3, 0.3, 0.3}},
	{"tree_mushroom_01", "tree_mushroom", "tree", "Mushroom tree (fantasy)", geometry.Cylinder{Height: 4, Radius: 0.4, Segments: 8}, [3]float32{0.6, 0.3, 0.6}},
	{"shrub_small_01", "shrub_small", "tree", "Small shrub", geometry.BoxFromSize(1), [3]float32{0.3, 0.5, 0.2}},
	{"bush_round_01", "bush_round", "tree", "Round bush/hedge", geometry.BoxFromSize(1.5), [3]float32{0.2, 0.5, 0.2}},
	{"grass_tufts_01", "grass_tufts", "tree", "Grass tufts", geometry.BoxFromSize(0.5), [3]float32{0.4, 0.6, 0.3}},

	// Rocks
	{"rock_large_01", "rock_large", "rock", "Large boulder", geometry.BoxFromSize(2.5), [3]float32{0.5, 0.5, 0.5}},
	{"rock_cluster_01", "rock_cluster", "rock", "Rock cluster", geometry.BoxFromSize(2), [3]float32{0.55, 0.55, 0.55}},
	{"rock_small_01", "rock_small", "rock", "Small stones", geometry.BoxFromSize(1), [3]float32{0.6, 0.6, 0.6}},
	{"rock_cliff_01", "rock_cliff", "rock", "Cliff face", geometry.BoxFromSize(5), [3]float32{0.45, 0.45, 0.45}},
	{"rock_crystal_01", "rock_crystal", "rock", "Crystal formation", geometry.BoxFromSize(3), [3]float32{0.3, 0.7, 1}},
	{"rock_desert_01", "rock_desert", "rock", "Desert rock", geometry.BoxFromSize(2), [3]float32{0.7, 0.6, 0.4}},

	// Structures
	{"crate_wood_01", "crate_wood", "structure", "Wooden crate", geometry.BoxFromSize(1.5), [3]float32{0.5, 0.3, 0.1}},
	{"barrel_01", "barrel", "structure", "Barrel", geometry.Cylinder{Height: 1.5, Radius: 0.4, Segments: 8}, [3]float32{0.5, 0.3, 0.1}},
	{"fence_01", "fence", "structure", "Fence section", geometry.BoxFromDimensions(3, 1.5, 0.2), [3]float32{0.4, 0.3, 0.2}},
	{"ruins_01", "ruins", "structure", "Ruined building", geometry.BoxFromSize(3), [3]float32{0.6, 0.6, 0.6}},
	{"pillar_stone_01", "pillar_stone", "structure", "Stone pillar", geometry.Cylinder{Height: 4, Radius: 0.3, Segments: 8}, [3]float32{0.7, 0.7, 0.7}},
	{"torch_01", "torch", "structure", "Torch/lamp post", geometry.Cylinder{Height: 2, Radius: 0.1, Segments: 6}, [3]float32{0.8, 0.4, 0.1}},
	{"signpost_01", "signpost", "structure", "Signpost", geometry.Cylinder{Height: 3, Radius: 0.1, Segments: 6}, [3]float32{0.5, 0.3, 0.1}},
	{"bridge_01", "bridge", "structure", "Bridge section", geometry.BoxFromDimensions(5, 0.5, 2), [3]float32{0.4, 0.3, 0.2}},

	// Environment
	{"flowers_01", "flowers", "environment", "Flower patches", geometry.BoxFromSize(0.5), [3]float32{0.9, 0.3, 0.5}},
	{"vines_01", "vines", "environment", "Vine growth", geometry.BoxFromDimensions(0.2, 3, 0.2), [3]float32{0.2, 0.5, 0.1}},
	{"lily_water_01", "lily_water", "environment", "Water lily", geometry.BoxFromDimensions(1, 0.1, 1), [3]float32{0.3, 0.7, 0.3}},
	{"mushrooms_01", "mushrooms", "environment", "Mushrooms", geometry.Cylinder{Height: 0.8, Radius: 0.4, Segments: 8}, [3]float32{0.7, 0.4, 0.3}},
	{"bones_01", "bones", "environment", "Bones/skull", geometry.BoxFromSize(1), [3]float32{0.9, 0.9, 0.8}},
	{"campfire_01", "campfire", "environment", "Campfire", geometry.Cylinder{Height: 1, Radius: 0.6, Segments: 8}, [3]float32{0.8, 0.3, 0.1}},
	{"well_01", "well", "environment", "Well", geometry.Cylinder{Height: 2, Radius: 1, Segments: 12}, [3]float32{0.5, 0.5, 0.5}},
	{"rubble_01", "rubble", "environment", "Ruins/rubble", geometry.BoxFromSize(1.5), [3]float32{0.6, 0.6, 0.6}},

	// Special
	{"placeholder_box", "placeholder_box", "special", "Placeholder for missing models", geometry.BoxFromSize(1), [3]float32{1, 0, 1}},
	{"marker_small", "marker_small", "special", "Invisible marker/spawn point", geometry.BoxFromSize(0.5), [3]float32{1, 1, 0}},

	// Plants
	{"plant_generic_01", "plant_generic", "plant", "Generic plant", geometry.Cylinder{Height: 1.5, Radius: 0.2, Segments: 6}, [3]float32{0.3, 0.6, 0.3}},
}

// Lookup returns the table entry for an id.
func Lookup(id string) (Def, bool) {
	for _, d := range Table {
		if d.ID == id {
			return d, true
		}
	}
	return Def{}, false
}
