// Package convert shells out to Blender to turn FBX interchange files
// into GLB containers. It is orchestration glue around the external
// tool; no 3D data is touched in-process.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrBlenderNotFound is returned when no Blender executable can be
// located.
var ErrBlenderNotFound = errors.New("blender executable not found")

// blenderPaths are the well-known install locations probed before
// falling back to PATH lookup.
var blenderPaths = []string{
	"/Applications/Blender.app/Contents/MacOS/Blender",
	`C:\Program Files\Blender Foundation\Blender 3.6\blender.exe`,
	"/usr/bin/blender",
	"/snap/bin/blender",
}

// exportScript drives Blender's import/export in background mode. The
// camera/light exports stay off so the output matches the procedural
// generator's single-mesh form as closely as possible.
const exportScript = `import bpy
import sys

bpy.ops.wm.read_factory_settings(use_empty=True)
bpy.ops.import_scene.fbx(filepath=%q)
bpy.ops.object.select_all(action='SELECT')
bpy.ops.export_scene.gltf(
    filepath=%q,
    export_format='GLB',
    export_cameras=False,
    export_lights=False,
    export_apply=True,
)
sys.exit(0)
`

// formatScript fills the driver script with quoted file paths.
func formatScript(fbxPath, glbPath string) string {
	return fmt.Sprintf(exportScript, fbxPath, glbPath)
}

// FindBlender locates a Blender executable: well-known paths first,
// then PATH.
func FindBlender() (string, error) {
	for _, path := range blenderPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	if path, err := exec.LookPath("blender"); err == nil {
		return path, nil
	}
	return "", ErrBlenderNotFound
}

// FBXToGLB converts one FBX file to GLB by running Blender in
// background mode. The context bounds the conversion; Blender is killed
// when it expires. The temporary driver script is removed on all paths.
func FBXToGLB(ctx context.Context, blender, fbxPath, glbPath string) error {
	script, err := os.CreateTemp("", "glbgen-convert-*.py")
	if err != nil {
		return fmt.Errorf("creating conversion script: %w", err)
	}
	defer os.Remove(script.Name())

	if _, err := script.WriteString(formatScript(fbxPath, glbPath)); err != nil {
		script.Close()
		return fmt.Errorf("writing conversion script: %w", err)
	}
	if err := script.Close(); err != nil {
		return fmt.Errorf("closing conversion script: %w", err)
	}

	cmd := exec.CommandContext(ctx, blender, "--background", "--python", script.Name())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("converting %s: %w", fbxPath, ctx.Err())
		}
		return fmt.Errorf("converting %s: %w: %s", fbxPath, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
