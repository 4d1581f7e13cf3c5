package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/edgeforge/glbgen/pkg/geometry"
)

// Encode serializes one mesh with one material into a complete GLB byte
// stream. The same inputs always produce byte-identical output.
func Encode(mesh *geometry.Mesh, mat Material, name string) ([]byte, error) {
	lay, err := computeLayout(mesh)
	if err != nil {
		return nil, err
	}

	payload, err := buildPayload(mesh, lay)
	if err != nil {
		return nil, err
	}

	jsonChunk, err := json.Marshal(buildDocument(mesh, mat, name, lay))
	if err != nil {
		return nil, fmt.Errorf("marshaling scene document: %w", err)
	}
	// JSON chunks are padded with spaces so the text stays valid JSON.
	jsonChunk = append(jsonChunk, bytes.Repeat([]byte{' '}, pad4(len(jsonChunk)))...)

	totalLength := headerSize + chunkHeaderSize + len(jsonChunk) + chunkHeaderSize + len(payload)

	out := new(bytes.Buffer)
	out.Grow(totalLength)
	binary.Write(out, binary.LittleEndian, Magic)
	binary.Write(out, binary.LittleEndian, Version)
	binary.Write(out, binary.LittleEndian, uint32(totalLength))
	binary.Write(out, binary.LittleEndian, uint32(len(jsonChunk)))
	binary.Write(out, binary.LittleEndian, chunkTypeJSON)
	out.Write(jsonChunk)
	binary.Write(out, binary.LittleEndian, uint32(len(payload)))
	binary.Write(out, binary.LittleEndian, chunkTypeBIN)
	out.Write(payload)

	if out.Len() != totalLength {
		return nil, fmt.Errorf("%w: declared total %d bytes, assembled %d", ErrLayoutMismatch, totalLength, out.Len())
	}
	return out.Bytes(), nil
}

// buildPayload serializes positions, normals and indices little-endian
// in that fixed order and zero-pads the result to a 4-byte boundary.
func buildPayload(mesh *geometry.Mesh, lay layout) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(lay.paddedLen)

	for _, p := range mesh.Positions {
		binary.Write(buf, binary.LittleEndian, [3]float32{p.X, p.Y, p.Z})
	}
	if buf.Len() != lay.normals.offset {
		return nil, fmt.Errorf("%w: position block ends at %d, expected %d", ErrLayoutMismatch, buf.Len(), lay.normals.offset)
	}

	for _, n := range mesh.Normals {
		binary.Write(buf, binary.LittleEndian, [3]float32{n.X, n.Y, n.Z})
	}
	if buf.Len() != lay.indices.offset {
		return nil, fmt.Errorf("%w: normal block ends at %d, expected %d", ErrLayoutMismatch, buf.Len(), lay.indices.offset)
	}

	binary.Write(buf, binary.LittleEndian, mesh.Indices)
	if buf.Len() != lay.indices.end() {
		return nil, fmt.Errorf("%w: index block ends at %d, expected %d", ErrLayoutMismatch, buf.Len(), lay.indices.end())
	}

	buf.Write(make([]byte, lay.paddedLen-buf.Len()))
	return buf.Bytes(), nil
}
