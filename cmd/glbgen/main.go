// glbgen is a CLI for generating procedural placeholder GLB models and
// the asset manifest that indexes them.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/edgeforge/glbgen/internal/config"
	"github.com/edgeforge/glbgen/internal/convert"
	"github.com/edgeforge/glbgen/internal/doodads"
	"github.com/edgeforge/glbgen/internal/logger"
	"github.com/edgeforge/glbgen/internal/manifest"
	"github.com/edgeforge/glbgen/pkg/glb"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "generate", "gen":
		cmdGenerate(cfg, rest)
	case "manifest":
		cmdManifest(cfg)
	case "convert":
		cmdConvert(cfg, rest)
	case "info":
		cmdInfo(rest)
	case "list", "ls":
		cmdList()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`glbgen - procedural GLB asset generator

Usage:
  glbgen [flags] <command> [args]

Commands:
  generate [id...]          Generate doodad models (all when no ids given)
  list                      List the doodad table
  manifest                  Build manifest.json from the asset tree
  convert <in.fbx> <out.glb>  Convert an FBX file via Blender
  info <file.glb>           Show container layout of a GLB file

Flags:
  -config path              Config file (default ./glbgen.yaml)
  -out dir                  Output directory for generated models
  -textures dir             Terrain texture directory
  -manifest path            Manifest output path
  -blender path             Blender executable
  -debug                    Enable debug logging

Examples:
  glbgen generate
  glbgen generate tree_oak_01 barrel_01
  glbgen -out build/models generate
  glbgen manifest
  glbgen info public/assets/models/doodads/tree_oak_01.glb`)
}

func cmdGenerate(cfg *config.Config, ids []string) {
	var err error
	if len(ids) == 0 {
		err = doodads.GenerateAll(cfg.Assets.ModelsDir)
	} else {
		err = doodads.GenerateByID(cfg.Assets.ModelsDir, ids)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdList() {
	for _, d := range doodads.Table {
		fmt.Printf("%-20s %-12s %s\n", d.ID, d.Type, d.Description)
	}
}

func cmdManifest(cfg *config.Config) {
	b := &manifest.Builder{
		TexturesDir: cfg.Assets.TexturesDir,
		ModelsDir:   cfg.Assets.ModelsDir,
	}
	m, err := b.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := m.WriteFile(cfg.Assets.ManifestPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d textures, %d models)\n",
		cfg.Assets.ManifestPath, m.TotalAssets.Textures, m.TotalAssets.Models)
}

func cmdConvert(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: glbgen convert <in.fbx> <out.glb>")
		os.Exit(1)
	}

	blender := cfg.Convert.BlenderPath
	if blender == "" {
		var err error
		blender, err = convert.FindBlender()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Convert.Timeout)
	defer cancel()

	if err := convert.FBXToGLB(ctx, blender, args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Converted %s -> %s\n", args[0], args[1])
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: glbgen info <file.glb>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c, err := glb.SplitChunks(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:        %s\n", args[0])
	fmt.Printf("Total bytes: %d\n", c.TotalLength)
	fmt.Printf("JSON chunk:  %d bytes\n", len(c.JSON))
	fmt.Printf("BIN chunk:   %d bytes\n", len(c.Bin))

	// Pull the headline facts out of the scene document.
	var doc struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
		Accessors []struct {
			Count int `json:"count"`
		} `json:"accessors"`
	}
	if err := json.Unmarshal(c.JSON, &doc); err == nil {
		if len(doc.Nodes) > 0 {
			fmt.Printf("Node:        %s\n", doc.Nodes[0].Name)
		}
		if len(doc.Accessors) == 3 {
			fmt.Printf("Vertices:    %d\n", doc.Accessors[0].Count)
			fmt.Printf("Triangles:   %d\n", doc.Accessors[2].Count/3)
		}
	}
}
