package glb

import (
	"fmt"

	"github.com/edgeforge/glbgen/pkg/geometry"
)

const (
	vec3Size  = 12 // 3 × float32
	indexSize = 2  // uint16
)

// region is one contiguous byte range inside the binary payload.
type region struct {
	offset int
	length int
}

func (r region) end() int { return r.offset + r.length }

// layout is the byte placement of the three data blocks inside the
// binary chunk, in their fixed order: positions, normals, indices.
type layout struct {
	positions region
	normals   region
	indices   region
	// paddedLen is the payload length after zero padding to 4 bytes.
	paddedLen int
}

// computeLayout validates the mesh and places its blocks contiguously.
func computeLayout(mesh *geometry.Mesh) (layout, error) {
	if mesh == nil || len(mesh.Positions) == 0 || len(mesh.Indices) == 0 {
		return layout{}, ErrEmptyMesh
	}
	if len(mesh.Positions) != len(mesh.Normals) {
		return layout{}, fmt.Errorf("%w: %d positions vs %d normals", ErrLayoutMismatch, len(mesh.Positions), len(mesh.Normals))
	}
	if len(mesh.Positions) > geometry.MaxVertices {
		return layout{}, fmt.Errorf("%w: %d vertices", ErrIndexOverflow, len(mesh.Positions))
	}
	if len(mesh.Indices)%3 != 0 {
		return layout{}, fmt.Errorf("%w: index count %d not a multiple of 3", ErrIndexRange, len(mesh.Indices))
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Positions) {
			return layout{}, fmt.Errorf("%w: index %d refers to vertex %d of %d", ErrIndexRange, i, idx, len(mesh.Positions))
		}
	}

	lay := layout{}
	lay.positions = region{offset: 0, length: len(mesh.Positions) * vec3Size}
	lay.normals = region{offset: lay.positions.end(), length: len(mesh.Normals) * vec3Size}
	lay.indices = region{offset: lay.normals.end(), length: len(mesh.Indices) * indexSize}

	// Always true with 12-byte vertex strides, but the uint16 block must
	// never start misaligned, so verify instead of assuming.
	if lay.indices.offset%indexSize != 0 {
		return layout{}, fmt.Errorf("%w: index block offset %d not 2-byte aligned", ErrLayoutMismatch, lay.indices.offset)
	}

	total := lay.indices.end()
	lay.paddedLen = total + pad4(total)
	return lay, nil
}
