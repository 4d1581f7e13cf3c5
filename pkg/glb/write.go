package glb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edgeforge/glbgen/pkg/geometry"
)

// WriteFile writes an encoded container to path atomically: the bytes go
// to a temporary file in the destination directory which is renamed into
// place only after a successful write. A failed write leaves no file
// behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".glbgen-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

// EncodeToFile encodes a mesh and writes it to path in one step.
func EncodeToFile(path string, mesh *geometry.Mesh, mat Material, name string) error {
	data, err := Encode(mesh, mat, name)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}
