// Package config handles generator configuration loading and management.
package config

import "time"

// Config holds all generator settings.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// AssetsConfig holds the asset tree paths.
type AssetsConfig struct {
	ModelsDir    string `yaml:"models_dir"`    // Destination for generated .glb files
	TexturesDir  string `yaml:"textures_dir"`  // Terrain textures indexed by the manifest
	ManifestPath string `yaml:"manifest_path"` // Where manifest.json is written
}

// ConvertConfig holds settings for the Blender conversion wrapper.
type ConvertConfig struct {
	BlenderPath string        `yaml:"blender_path"` // Empty means auto-detect
	Timeout     time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			ModelsDir:    "public/assets/models/doodads",
			TexturesDir:  "public/assets/textures/terrain",
			ManifestPath: "public/assets/manifest.json",
		},
		Convert: ConvertConfig{
			Timeout: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
