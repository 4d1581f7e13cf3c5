package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagOut      = flag.String("out", "", "Output directory for generated models")
	flagTextures = flag.String("textures", "", "Terrain texture directory")
	flagManifest = flag.String("manifest", "", "Manifest output path")
	flagBlender  = flag.String("blender", "", "Blender executable path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Assets.ModelsDir = *flagOut
	}
	if *flagTextures != "" {
		cfg.Assets.TexturesDir = *flagTextures
	}
	if *flagManifest != "" {
		cfg.Assets.ManifestPath = *flagManifest
	}
	if *flagBlender != "" {
		cfg.Convert.BlenderPath = *flagBlender
	}
}
