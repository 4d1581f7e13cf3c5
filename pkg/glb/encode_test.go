package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeforge/glbgen/pkg/geometry"
	m "github.com/edgeforge/glbgen/pkg/math"
)

func testMesh(t *testing.T) *geometry.Mesh {
	t.Helper()
	mesh, err := geometry.Box{HalfExtents: m.Vec3{X: 1, Y: 1, Z: 1}}.Generate()
	require.NoError(t, err)
	return mesh
}

func TestEncodeRoundTrip(t *testing.T) {
	mesh := testMesh(t)
	mat := NewMaterial("crate_mat", 0.5, 0.3, 0.1)

	data, err := Encode(mesh, mat, "crate")
	require.NoError(t, err)

	c, err := SplitChunks(data)
	require.NoError(t, err)

	assert.Equal(t, len(data), int(c.TotalLength))
	assert.Equal(t, len(data), headerSize+chunkHeaderSize+len(c.JSON)+chunkHeaderSize+len(c.Bin))
	assert.Zero(t, len(c.JSON)%4, "JSON chunk not 4-byte aligned")
	assert.Zero(t, len(c.Bin)%4, "BIN chunk not 4-byte aligned")

	// Reassembling from the split chunks must reproduce the input.
	rebuilt := new(bytes.Buffer)
	binary.Write(rebuilt, binary.LittleEndian, Magic)
	binary.Write(rebuilt, binary.LittleEndian, Version)
	binary.Write(rebuilt, binary.LittleEndian, c.TotalLength)
	binary.Write(rebuilt, binary.LittleEndian, uint32(len(c.JSON)))
	binary.Write(rebuilt, binary.LittleEndian, chunkTypeJSON)
	rebuilt.Write(c.JSON)
	binary.Write(rebuilt, binary.LittleEndian, uint32(len(c.Bin)))
	binary.Write(rebuilt, binary.LittleEndian, chunkTypeBIN)
	rebuilt.Write(c.Bin)
	assert.Equal(t, data, rebuilt.Bytes())
}

func TestEncodeIdempotent(t *testing.T) {
	mesh := testMesh(t)
	mat := NewMaterial("rock_mat", 0.5, 0.5, 0.5)

	first, err := Encode(mesh, mat, "rock")
	require.NoError(t, err)
	second, err := Encode(mesh, mat, "rock")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeDocument(t *testing.T) {
	cyl := geometry.Cylinder{Height: 4, Radius: 0.5, Segments: 8}
	mesh, err := cyl.Generate()
	require.NoError(t, err)

	data, err := Encode(mesh, NewMaterial("tree_mat", 0.4, 0.3, 0.2), "tree")
	require.NoError(t, err)
	c, err := SplitChunks(data)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(bytes.TrimRight(c.JSON, " "), &doc))

	assert.Equal(t, "2.0", doc.Asset.Version)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "tree", doc.Nodes[0].Name)
	require.Len(t, doc.Accessors, 3)
	assert.Equal(t, 34, doc.Accessors[0].Count)
	assert.Equal(t, 34, doc.Accessors[1].Count)
	assert.Equal(t, 96, doc.Accessors[2].Count)
	assert.Equal(t, componentFloat, doc.Accessors[0].ComponentType)
	assert.Equal(t, componentUnsignedShort, doc.Accessors[2].ComponentType)

	// Accessor bounds must equal the true min/max over positions.
	bmin, bmax := mesh.Bounds()
	assert.Equal(t, []float32{bmin.X, bmin.Y, bmin.Z}, doc.Accessors[0].Min)
	assert.Equal(t, []float32{bmax.X, bmax.Y, bmax.Z}, doc.Accessors[0].Max)

	// Buffer views cover the payload contiguously in declared order.
	require.Len(t, doc.BufferViews, 3)
	assert.Equal(t, 0, doc.BufferViews[0].ByteOffset)
	assert.Equal(t, 34*12, doc.BufferViews[0].ByteLength)
	assert.Equal(t, 34*12, doc.BufferViews[1].ByteOffset)
	assert.Equal(t, 34*12, doc.BufferViews[1].ByteLength)
	assert.Equal(t, 2*34*12, doc.BufferViews[2].ByteOffset)
	assert.Equal(t, 96*2, doc.BufferViews[2].ByteLength)

	require.Len(t, doc.Buffers, 1)
	assert.Equal(t, len(c.Bin), doc.Buffers[0].ByteLength)

	require.Len(t, doc.Materials, 1)
	assert.Equal(t, "tree_mat", doc.Materials[0].Name)
	assert.Equal(t, [4]float32{0.4, 0.3, 0.2, 1}, doc.Materials[0].PBR.BaseColorFactor)
	assert.Equal(t, float32(0), doc.Materials[0].PBR.MetallicFactor)
	assert.Equal(t, float32(0.8), doc.Materials[0].PBR.RoughnessFactor)
}

func TestEncodePayloadBytes(t *testing.T) {
	mesh := testMesh(t)
	data, err := Encode(mesh, NewMaterial("box_mat", 1, 0, 1), "box")
	require.NoError(t, err)
	c, err := SplitChunks(data)
	require.NoError(t, err)

	// First vertex is (-1,-1,-1) as little-endian floats.
	var x, y, z float32
	r := bytes.NewReader(c.Bin)
	require.NoError(t, binary.Read(r, binary.LittleEndian, &x))
	require.NoError(t, binary.Read(r, binary.LittleEndian, &y))
	require.NoError(t, binary.Read(r, binary.LittleEndian, &z))
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(-1), y)
	assert.Equal(t, float32(-1), z)

	// Index block follows the two float blocks; first triangle is 0,1,2.
	idxOffset := len(mesh.Positions)*12 + len(mesh.Normals)*12
	first := binary.LittleEndian.Uint16(c.Bin[idxOffset:])
	second := binary.LittleEndian.Uint16(c.Bin[idxOffset+2:])
	third := binary.LittleEndian.Uint16(c.Bin[idxOffset+4:])
	assert.Equal(t, uint16(0), first)
	assert.Equal(t, uint16(1), second)
	assert.Equal(t, uint16(2), third)
}

func TestEncodeRejectsEmptyMesh(t *testing.T) {
	_, err := Encode(&geometry.Mesh{}, NewMaterial("m", 1, 1, 1), "empty")
	assert.ErrorIs(t, err, ErrEmptyMesh)

	mesh := testMesh(t)
	mesh.Indices = nil
	_, err = Encode(mesh, NewMaterial("m", 1, 1, 1), "no-indices")
	assert.ErrorIs(t, err, ErrEmptyMesh)
}

func TestEncodeRejectsBadIndices(t *testing.T) {
	mesh := testMesh(t)
	mesh.Indices = append(mesh.Indices[:0:0], mesh.Indices...)
	mesh.Indices[0] = 200 // only 8 vertices exist
	_, err := Encode(mesh, NewMaterial("m", 1, 1, 1), "bad")
	assert.ErrorIs(t, err, ErrIndexRange)

	mesh = testMesh(t)
	mesh.Indices = mesh.Indices[:35] // not a multiple of 3
	_, err = Encode(mesh, NewMaterial("m", 1, 1, 1), "bad")
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestEncodeRejectsMismatchedNormals(t *testing.T) {
	mesh := testMesh(t)
	mesh.Normals = mesh.Normals[:4]
	_, err := Encode(mesh, NewMaterial("m", 1, 1, 1), "bad")
	assert.ErrorIs(t, err, ErrLayoutMismatch)
}

func TestSplitChunksRejectsGarbage(t *testing.T) {
	_, err := SplitChunks([]byte("not a glb"))
	assert.ErrorIs(t, err, ErrInvalidGLB)

	mesh := testMesh(t)
	data, err := Encode(mesh, NewMaterial("m", 1, 1, 1), "box")
	require.NoError(t, err)

	// Truncated stream no longer matches the declared total length.
	_, err = SplitChunks(data[:len(data)-4])
	assert.ErrorIs(t, err, ErrInvalidGLB)
}
