// Package manifest builds the asset index consumed by the game client:
// a JSON document describing every terrain texture and doodad model on
// disk. It stats files but never parses their contents.
package manifest

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Manifest is the root of manifest.json.
type Manifest struct {
	Version     string                  `json:"version"`
	Description string                  `json:"description"`
	LastUpdated string                  `json:"lastUpdated"`
	TotalAssets Totals                  `json:"totalAssets"`
	Textures    map[string]TextureEntry `json:"textures"`
	Models      map[string]ModelEntry   `json:"models"`
}

// Totals summarizes asset counts.
type Totals struct {
	Textures int `json:"textures"`
	Models   int `json:"models"`
}

// TextureEntry describes one terrain texture.
type TextureEntry struct {
	ID         string  `json:"id"`
	Path       string  `json:"path"`
	Type       string  `json:"type"`
	Resolution string  `json:"resolution"`
	Format     string  `json:"format"`
	License    string  `json:"license"`
	Author     string  `json:"author"`
	SourceURL  string  `json:"sourceUrl"`
	FileSizeMB float64 `json:"fileSizeMB"`
}

// ModelEntry describes one doodad model.
type ModelEntry struct {
	ID          string  `json:"id"`
	Path        string  `json:"path"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Format      string  `json:"format"`
	Triangles   int     `json:"triangles"`
	License     string  `json:"license"`
	Author      string  `json:"author"`
	SourceURL   string  `json:"sourceUrl"`
	FileSizeKB  float64 `json:"fileSizeKB"`
}

// Builder walks the asset directories and assembles a Manifest.
type Builder struct {
	TexturesDir string
	ModelsDir   string

	// LastUpdated overrides the date stamp; defaults to today. Tests
	// set it for deterministic output.
	LastUpdated string
}

// Build scans both directories. A missing directory contributes no
// entries rather than failing, so partial asset trees still index.
func (b *Builder) Build() (*Manifest, error) {
	m := &Manifest{
		Version:     "2.0.0",
		Description: "EdgeForge asset library",
		LastUpdated: b.LastUpdated,
		Textures:    make(map[string]TextureEntry),
		Models:      make(map[string]ModelEntry),
	}
	if m.LastUpdated == "" {
		m.LastUpdated = time.Now().Format("2006-01-02")
	}

	if err := b.scanTextures(m); err != nil {
		return nil, err
	}
	if err := b.scanModels(m); err != nil {
		return nil, err
	}

	m.TotalAssets = Totals{Textures: len(m.Textures), Models: len(m.Models)}
	return m, nil
}

// WriteFile serializes the manifest with indentation, atomically.
func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".manifest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp manifest: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing manifest: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renaming manifest into place: %w", err)
	}
	return nil
}

func (b *Builder) scanTextures(m *Manifest) error {
	files, err := listFiles(b.TexturesDir, ".jpg")
	if err != nil {
		return err
	}

	for _, name := range files {
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		texType := "diffuse"
		base := stem
		switch {
		case strings.HasSuffix(stem, "_normal"):
			texType = "normal"
			base = strings.TrimSuffix(stem, "_normal")
		case strings.HasSuffix(stem, "_roughness"):
			texType = "roughness"
			base = strings.TrimSuffix(stem, "_roughness")
		}

		format := "JPG"
		if texType == "normal" {
			format = "JPG (OpenGL)"
		}

		size, err := fileSize(filepath.Join(b.TexturesDir, name))
		if err != nil {
			return err
		}

		id := "terrain_" + stem
		m.Textures[id] = TextureEntry{
			ID:         id,
			Path:       texturePathPrefix + "/" + name,
			Type:       texType,
			Resolution: "2048x2048",
			Format:     format,
			License:    "CC0 1.0",
			Author:     "Poly Haven Team",
			SourceURL:  textureSource(base),
			FileSizeMB: round2(float64(size) / (1024 * 1024)),
		}
	}
	return nil
}

func (b *Builder) scanModels(m *Manifest) error {
	files, err := listFiles(b.ModelsDir, ".glb")
	if err != nil {
		return err
	}

	for _, name := range files {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		modelType, description := modelInfo(stem)

		size, err := fileSize(filepath.Join(b.ModelsDir, name))
		if err != nil {
			return err
		}
		sizeKB := float64(size) / 1024

		author, source := modelAttribution(stem)

		id := "doodad_" + stem
		m.Models[id] = ModelEntry{
			ID:          id,
			Path:        modelPathPrefix + "/" + name,
			Type:        modelType,
			Description: description,
			Format:      "GLB (glTF 2.0)",
			Triangles:   int(sizeKB * 5), // stat-based estimate; GLB payloads are never parsed
			License:     "CC0 1.0",
			Author:      author,
			SourceURL:   source,
			FileSizeKB:  round2(sizeKB),
		}
	}
	return nil
}

// listFiles returns the sorted file names in dir with the given
// extension. A missing dir yields no files.
func listFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Size(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
