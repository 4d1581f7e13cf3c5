package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	m "github.com/edgeforge/glbgen/pkg/math"
)

// Cylinder is a capped N-sided cylinder standing on the XZ plane, with
// its base at y=0 and its top at y=Height.
type Cylinder struct {
	Height   float32
	Radius   float32
	Segments int
}

// Validate checks height, radius and segment count.
func (c Cylinder) Validate() error {
	if c.Height <= 0 {
		return fmt.Errorf("%w: cylinder height must be positive, got %g", ErrInvalidShapeParams, c.Height)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: cylinder radius must be positive, got %g", ErrInvalidShapeParams, c.Radius)
	}
	if c.Segments < 3 {
		return fmt.Errorf("%w: cylinder needs at least 3 segments, got %d", ErrInvalidShapeParams, c.Segments)
	}
	return nil
}

// Generate builds the cylinder mesh.
//
// Vertex layout, in order: bottom center, top center, `Segments` bottom
// rim vertices (normal down), `Segments` top rim vertices (normal up),
// then `Segments` bottom/top side pairs with outward radial normals.
// Cap rims and side wall do not share vertices so the caps stay flat
// shaded while the wall is smooth.
func (c Cylinder) Generate() (*Mesh, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	vertexCount := 2 + 4*c.Segments
	if vertexCount > MaxVertices {
		return nil, fmt.Errorf("%w: %d segments needs %d vertices", ErrIndexOverflow, c.Segments, vertexCount)
	}

	positions := make([]m.Vec3, 0, vertexCount)
	normals := make([]m.Vec3, 0, vertexCount)

	positions = append(positions, m.Vec3{})
	normals = append(normals, m.Vec3{Y: -1})
	positions = append(positions, m.Vec3{Y: c.Height})
	normals = append(normals, m.Vec3{Y: 1})

	rim := func(i int) (x, z, nx, nz float32) {
		angle := 2 * math32.Pi * float32(i) / float32(c.Segments)
		nx, nz = math32.Cos(angle), math32.Sin(angle)
		return c.Radius * nx, c.Radius * nz, nx, nz
	}

	for i := 0; i < c.Segments; i++ {
		x, z, _, _ := rim(i)
		positions = append(positions, m.Vec3{X: x, Z: z})
		normals = append(normals, m.Vec3{Y: -1})
	}
	for i := 0; i < c.Segments; i++ {
		x, z, _, _ := rim(i)
		positions = append(positions, m.Vec3{X: x, Y: c.Height, Z: z})
		normals = append(normals, m.Vec3{Y: 1})
	}
	for i := 0; i < c.Segments; i++ {
		x, z, nx, nz := rim(i)
		positions = append(positions, m.Vec3{X: x, Z: z})
		normals = append(normals, m.Vec3{X: nx, Z: nz})
		positions = append(positions, m.Vec3{X: x, Y: c.Height, Z: z})
		normals = append(normals, m.Vec3{X: nx, Z: nz})
	}

	bottomRim := func(i int) uint16 { return uint16(2 + i) }
	topRim := func(i int) uint16 { return uint16(2 + c.Segments + i) }

	indices := make([]uint16, 0, 12*c.Segments)

	// Caps. The bottom cap winding is reversed so it faces down.
	for i := 0; i < c.Segments; i++ {
		next := (i + 1) % c.Segments
		indices = append(indices, 0, bottomRim(next), bottomRim(i))
		indices = append(indices, 1, topRim(i), topRim(next))
	}

	// Side wall: one quad (two triangles) per segment between the
	// bottom/top pairs at steps i and i+1.
	sideBase := 2 + 2*c.Segments
	for i := 0; i < c.Segments; i++ {
		next := (i + 1) % c.Segments
		v0 := uint16(sideBase + i*2)
		v1 := uint16(sideBase + i*2 + 1)
		v2 := uint16(sideBase + next*2)
		v3 := uint16(sideBase + next*2 + 1)
		indices = append(indices, v0, v2, v1)
		indices = append(indices, v1, v2, v3)
	}

	return &Mesh{Positions: positions, Normals: normals, Indices: indices}, nil
}
