// Package glb encodes triangle meshes into glTF 2.0 binary (GLB)
// containers: a 12-byte header followed by a 4-byte-aligned JSON chunk
// and a 4-byte-aligned binary chunk holding vertex, normal and index
// data.
package glb

import "errors"

// GLB container constants.
const (
	Magic   uint32 = 0x46546C67 // "glTF"
	Version uint32 = 2

	chunkTypeJSON uint32 = 0x4E4F534A // "JSON"
	chunkTypeBIN  uint32 = 0x004E4942 // "BIN\0"

	headerSize      = 12
	chunkHeaderSize = 8
)

// glTF accessor component types and buffer-view targets.
const (
	componentFloat         = 5126
	componentUnsignedShort = 5123

	targetArrayBuffer        = 34962
	targetElementArrayBuffer = 34963
)

// Encoding errors.
var (
	ErrEmptyMesh      = errors.New("mesh has no vertices or no indices")
	ErrIndexOverflow  = errors.New("vertex count exceeds 16-bit index range")
	ErrIndexRange     = errors.New("triangle index out of range")
	ErrLayoutMismatch = errors.New("binary layout mismatch")
	ErrInvalidGLB     = errors.New("invalid GLB container")
)

// Material describes the single PBR material attached to an encoded mesh.
// Color channels are expected in [0,1]; the encoder does not clamp.
type Material struct {
	Name      string
	BaseColor [3]float32
	Metallic  float32
	Roughness float32
}

// NewMaterial returns a Material with the default metallic/roughness
// factors used across the doodad set.
func NewMaterial(name string, r, g, b float32) Material {
	return Material{
		Name:      name,
		BaseColor: [3]float32{r, g, b},
		Metallic:  0,
		Roughness: 0.8,
	}
}

// pad4 returns the number of bytes needed to reach the next multiple of 4.
func pad4(n int) int {
	return (4 - n%4) % 4
}
