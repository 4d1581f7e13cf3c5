package geometry

import (
	"testing"

	m "github.com/edgeforge/glbgen/pkg/math"
)

func TestBoxGenerate(t *testing.T) {
	mesh, err := Box{HalfExtents: m.Vec3{X: 1, Y: 1, Z: 1}}.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if mesh.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", mesh.VertexCount())
	}
	if len(mesh.Indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(mesh.Indices))
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", mesh.TriangleCount())
	}
	if len(mesh.Normals) != len(mesh.Positions) {
		t.Errorf("normals/positions length mismatch: %d vs %d", len(mesh.Normals), len(mesh.Positions))
	}

	bmin, bmax := mesh.Bounds()
	if bmin != (m.Vec3{X: -1, Y: -1, Z: -1}) {
		t.Errorf("bounds min = %v, want {-1 -1 -1}", bmin)
	}
	if bmax != (m.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("bounds max = %v, want {1 1 1}", bmax)
	}
}

func TestBoxNormalAssignment(t *testing.T) {
	// The first four corners carry the front normal, the last four the
	// back normal. Renderers already consuming our files expect exactly
	// this data, so it is pinned here.
	mesh, err := BoxFromSize(2).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		if mesh.Normals[i] != (m.Vec3{Z: -1}) {
			t.Errorf("normal %d = %v, want {0 0 -1}", i, mesh.Normals[i])
		}
	}
	for i := 4; i < 8; i++ {
		if mesh.Normals[i] != (m.Vec3{Z: 1}) {
			t.Errorf("normal %d = %v, want {0 0 1}", i, mesh.Normals[i])
		}
	}
}

func TestBoxIndexOrder(t *testing.T) {
	mesh, err := BoxFromSize(1).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []uint16{
		0, 1, 2, 2, 3, 0,
		5, 4, 7, 7, 6, 5,
		3, 2, 6, 6, 7, 3,
		4, 5, 1, 1, 0, 4,
		1, 5, 6, 6, 2, 1,
		4, 0, 3, 3, 7, 4,
	}
	if len(mesh.Indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(mesh.Indices))
	}
	for i, idx := range want {
		if mesh.Indices[i] != idx {
			t.Errorf("index %d = %d, want %d", i, mesh.Indices[i], idx)
		}
	}
}

func TestBoxFromDimensions(t *testing.T) {
	mesh, err := BoxFromDimensions(3, 1.5, 0.2).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	bmin, bmax := mesh.Bounds()
	if bmin != (m.Vec3{X: -1.5, Y: -0.75, Z: -0.1}) {
		t.Errorf("bounds min = %v", bmin)
	}
	if bmax != (m.Vec3{X: 1.5, Y: 0.75, Z: 0.1}) {
		t.Errorf("bounds max = %v", bmax)
	}
}

func TestBoxInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		box  Box
	}{
		{"zero extents", Box{}},
		{"negative x", Box{HalfExtents: m.Vec3{X: -1, Y: 1, Z: 1}}},
		{"zero y", Box{HalfExtents: m.Vec3{X: 1, Y: 0, Z: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.box.Generate(); err == nil {
				t.Error("expected error for invalid box")
			}
		})
	}
}
