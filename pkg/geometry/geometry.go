// Package geometry generates triangle meshes for the procedural doodad shapes.
package geometry

import (
	"errors"

	m "github.com/edgeforge/glbgen/pkg/math"
)

// Shape generation errors.
var (
	ErrInvalidShapeParams = errors.New("invalid shape parameters")
	ErrIndexOverflow      = errors.New("vertex count exceeds 16-bit index range")
)

// MaxVertices is the largest vertex count a mesh may have, since triangle
// indices are stored as uint16.
const MaxVertices = 65535

// Mesh is an indexed triangle mesh. Positions and Normals have the same
// length and index correspondence; Indices holds counter-clockwise wound
// triangles as triples of vertex indices.
type Mesh struct {
	Positions []m.Vec3
	Normals   []m.Vec3
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (mesh *Mesh) VertexCount() int {
	return len(mesh.Positions)
}

// TriangleCount returns the number of triangles.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Bounds returns the per-axis minimum and maximum over all positions.
// It is recomputed from the live positions on every call so it can never
// go stale. Returns zero vectors for an empty mesh.
func (mesh *Mesh) Bounds() (bmin, bmax m.Vec3) {
	if len(mesh.Positions) == 0 {
		return m.Vec3{}, m.Vec3{}
	}
	bmin = mesh.Positions[0]
	bmax = mesh.Positions[0]
	for _, p := range mesh.Positions[1:] {
		bmin = bmin.Min(p)
		bmax = bmax.Max(p)
	}
	return bmin, bmax
}

// ShapeSpec describes a parametric shape that can build its own mesh.
type ShapeSpec interface {
	// Validate reports ErrInvalidShapeParams for out-of-range parameters.
	Validate() error
	// Generate builds the triangle mesh. It validates first and also
	// rejects shapes whose vertex count would overflow uint16 indices.
	Generate() (*Mesh, error)
}
