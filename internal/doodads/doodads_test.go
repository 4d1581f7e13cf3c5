package doodads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edgeforge/glbgen/internal/logger"
	"github.com/edgeforge/glbgen/pkg/glb"
)

func TestMain(m *testing.M) {
	// Tests exercise the batch driver, which logs; keep it quiet.
	if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestTableEntriesValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Table {
		if seen[d.ID] {
			t.Errorf("duplicate doodad id %q", d.ID)
		}
		seen[d.ID] = true

		if d.Name == "" || d.Type == "" || d.Description == "" {
			t.Errorf("%s: incomplete metadata", d.ID)
		}
		if err := d.Shape.Validate(); err != nil {
			t.Errorf("%s: invalid shape: %v", d.ID, err)
		}
		for i, ch := range d.Color {
			if ch < 0 || ch > 1 {
				t.Errorf("%s: color channel %d out of range: %v", d.ID, i, ch)
			}
		}
	}
}

func TestBuildAll(t *testing.T) {
	for _, d := range Table {
		data, err := d.Build()
		if err != nil {
			t.Errorf("%s: Build failed: %v", d.ID, err)
			continue
		}
		if _, err := glb.SplitChunks(data); err != nil {
			t.Errorf("%s: output is not a valid container: %v", d.ID, err)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateAll(dir); err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != len(Table) {
		t.Errorf("expected %d files, got %d", len(Table), len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, "tree_oak_01.glb"))
	if err != nil {
		t.Fatalf("reading tree_oak_01.glb: %v", err)
	}
	if _, err := glb.SplitChunks(data); err != nil {
		t.Errorf("tree_oak_01.glb is not a valid container: %v", err)
	}
}

func TestGenerateByID(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateByID(dir, []string{"barrel_01", "well_01"}); err != nil {
		t.Fatalf("GenerateByID failed: %v", err)
	}

	for _, name := range []string{"barrel_01.glb", "well_01.glb"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestGenerateByIDUnknown(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateByID(dir, []string{"tree_oak_01", "no_such_model"}); err == nil {
		t.Fatal("expected error for unknown id")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("unknown id must fail before writing, found %d files", len(entries))
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("well_01")
	if !ok {
		t.Fatal("Lookup(well_01) not found")
	}
	if d.Type != "environment" {
		t.Errorf("well_01 type = %q, want environment", d.Type)
	}

	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) should not be found")
	}
}
