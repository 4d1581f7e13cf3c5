package glb

import (
	"github.com/edgeforge/glbgen/pkg/geometry"
)

// The document types mirror the subset of the glTF 2.0 schema this
// encoder emits: one scene, one node, one mesh with one primitive, three
// accessors over one buffer, one material. Field order follows the
// schema section order so the serialized JSON reads top-down.

type document struct {
	Asset       asset        `json:"asset"`
	Scene       int          `json:"scene"`
	Scenes      []scene      `json:"scenes"`
	Nodes       []node       `json:"nodes"`
	Meshes      []meshEntry  `json:"meshes"`
	Accessors   []accessor   `json:"accessors"`
	BufferViews []bufferView `json:"bufferViews"`
	Buffers     []buffer     `json:"buffers"`
	Materials   []material   `json:"materials"`
}

type asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
	Copyright string `json:"copyright"`
}

type scene struct {
	Nodes []int `json:"nodes"`
}

type node struct {
	Mesh int    `json:"mesh"`
	Name string `json:"name"`
}

type meshEntry struct {
	Name       string      `json:"name"`
	Primitives []primitive `json:"primitives"`
}

type primitive struct {
	Attributes attributes `json:"attributes"`
	Indices    int        `json:"indices"`
	Material   int        `json:"material"`
}

type attributes struct {
	Position int `json:"POSITION"`
	Normal   int `json:"NORMAL"`
}

type accessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Max           []float32 `json:"max,omitempty"`
	Min           []float32 `json:"min,omitempty"`
}

type bufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target"`
}

type buffer struct {
	ByteLength int `json:"byteLength"`
}

type material struct {
	Name string        `json:"name"`
	PBR  pbrMetalRough `json:"pbrMetallicRoughness"`
}

type pbrMetalRough struct {
	BaseColorFactor [4]float32 `json:"baseColorFactor"`
	MetallicFactor  float32    `json:"metallicFactor"`
	RoughnessFactor float32    `json:"roughnessFactor"`
}

// buildDocument assembles the scene-description document for one mesh.
// Accessor bounds are taken from the live mesh positions.
func buildDocument(mesh *geometry.Mesh, mat Material, name string, lay layout) document {
	bmin, bmax := mesh.Bounds()

	return document{
		Asset: asset{
			Version:   "2.0",
			Generator: "glbgen",
			Copyright: "CC0 1.0 - Public Domain",
		},
		Scene:  0,
		Scenes: []scene{{Nodes: []int{0}}},
		Nodes:  []node{{Mesh: 0, Name: name}},
		Meshes: []meshEntry{{
			Name: name,
			Primitives: []primitive{{
				Attributes: attributes{Position: 0, Normal: 1},
				Indices:    2,
				Material:   0,
			}},
		}},
		Accessors: []accessor{
			{
				BufferView:    0,
				ComponentType: componentFloat,
				Count:         len(mesh.Positions),
				Type:          "VEC3",
				Max:           []float32{bmax.X, bmax.Y, bmax.Z},
				Min:           []float32{bmin.X, bmin.Y, bmin.Z},
			},
			{
				BufferView:    1,
				ComponentType: componentFloat,
				Count:         len(mesh.Normals),
				Type:          "VEC3",
			},
			{
				BufferView:    2,
				ComponentType: componentUnsignedShort,
				Count:         len(mesh.Indices),
				Type:          "SCALAR",
			},
		},
		BufferViews: []bufferView{
			{Buffer: 0, ByteOffset: lay.positions.offset, ByteLength: lay.positions.length, Target: targetArrayBuffer},
			{Buffer: 0, ByteOffset: lay.normals.offset, ByteLength: lay.normals.length, Target: targetArrayBuffer},
			{Buffer: 0, ByteOffset: lay.indices.offset, ByteLength: lay.indices.length, Target: targetElementArrayBuffer},
		},
		Buffers: []buffer{{ByteLength: lay.paddedLen}},
		Materials: []material{{
			Name: mat.Name,
			PBR: pbrMetalRough{
				BaseColorFactor: [4]float32{mat.BaseColor[0], mat.BaseColor[1], mat.BaseColor[2], 1},
				MetallicFactor:  mat.Metallic,
				RoughnessFactor: mat.Roughness,
			},
		}},
	}
}
