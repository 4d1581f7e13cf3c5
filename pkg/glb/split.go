package glb

import (
	"encoding/binary"
	"fmt"
)

// Container is a GLB byte stream split back into its two chunks using
// the declared lengths. Chunk slices include their padding.
type Container struct {
	TotalLength uint32
	JSON        []byte
	Bin         []byte
}

// SplitChunks re-parses an encoded container into its JSON and binary
// chunks. It accepts only the single-JSON/single-BIN form this encoder
// produces; it exists for output verification, not as a general glTF
// reader.
func SplitChunks(data []byte) (*Container, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidGLB, len(data))
	}
	if got := binary.LittleEndian.Uint32(data[0:4]); got != Magic {
		return nil, fmt.Errorf("%w: bad magic 0x%08X", ErrInvalidGLB, got)
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidGLB, got)
	}
	total := binary.LittleEndian.Uint32(data[8:12])
	if int(total) != len(data) {
		return nil, fmt.Errorf("%w: header declares %d bytes, have %d", ErrInvalidGLB, total, len(data))
	}

	jsonChunk, rest, err := readChunk(data[headerSize:], chunkTypeJSON)
	if err != nil {
		return nil, err
	}
	binChunk, rest, err := readChunk(rest, chunkTypeBIN)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after BIN chunk", ErrInvalidGLB, len(rest))
	}

	return &Container{TotalLength: total, JSON: jsonChunk, Bin: binChunk}, nil
}

// readChunk consumes one chunk of the expected type from data.
func readChunk(data []byte, wantType uint32) (chunk, rest []byte, err error) {
	if len(data) < chunkHeaderSize {
		return nil, nil, fmt.Errorf("%w: truncated chunk header", ErrInvalidGLB)
	}
	length := binary.LittleEndian.Uint32(data[0:4])
	chunkType := binary.LittleEndian.Uint32(data[4:8])
	if chunkType != wantType {
		return nil, nil, fmt.Errorf("%w: chunk type 0x%08X, want 0x%08X", ErrInvalidGLB, chunkType, wantType)
	}
	if length%4 != 0 {
		return nil, nil, fmt.Errorf("%w: chunk length %d not 4-byte aligned", ErrInvalidGLB, length)
	}
	body := data[chunkHeaderSize:]
	if int(length) > len(body) {
		return nil, nil, fmt.Errorf("%w: chunk declares %d bytes, only %d remain", ErrInvalidGLB, length, len(body))
	}
	return body[:length], body[length:], nil
}
