package doodads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/edgeforge/glbgen/internal/logger"
	"github.com/edgeforge/glbgen/pkg/glb"
)

// Build encodes one doodad definition into GLB bytes.
func (d Def) Build() ([]byte, error) {
	mesh, err := d.Shape.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", d.ID, err)
	}
	data, err := glb.Encode(mesh, d.Material(), d.Name)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", d.ID, err)
	}
	return data, nil
}

// Generate builds the named doodads into dir, one <id>.glb per entry.
// Each model is an independent request: a failure is logged and recorded
// but does not stop the rest of the batch. The combined error lists
// every failed id.
func Generate(dir string, defs []Def) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", dir, err)
	}

	var errs []error
	for _, d := range defs {
		path := filepath.Join(dir, d.ID+".glb")

		data, err := d.Build()
		if err != nil {
			logger.Error("doodad generation failed", zap.String("id", d.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if err := glb.WriteFile(path, data); err != nil {
			logger.Error("doodad write failed", zap.String("id", d.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		logger.Info("generated doodad",
			zap.String("id", d.ID),
			zap.String("path", path),
			zap.Int("bytes", len(data)))
	}
	return errors.Join(errs...)
}

// GenerateAll builds every entry in the table into dir.
func GenerateAll(dir string) error {
	return Generate(dir, Table)
}

// GenerateByID builds the doodads with the given ids into dir. Unknown
// ids fail the whole call before anything is written.
func GenerateByID(dir string, ids []string) error {
	defs := make([]Def, 0, len(ids))
	for _, id := range ids {
		d, ok := Lookup(id)
		if !ok {
			return fmt.Errorf("unknown doodad id %q", id)
		}
		defs = append(defs, d)
	}
	return Generate(dir, defs)
}
