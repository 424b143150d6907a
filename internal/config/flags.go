package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSeed       = flag.Int64("seed", 0, "Generation seed (0 = random)")
	flagSide       = flag.Float64("side", 0, "Terrain side length in world units")
	flagResolution = flag.Int("resolution", 0, "Height grid points per side")
	flagOBJ        = flag.String("obj", "", "OBJ mesh output path")
	flagHeightmap  = flag.String("heightmap", "", "Heightmap PNG output path")
	flagPlacements = flag.String("placements", "", "Placements YAML output path")
	flagWireframe  = flag.Bool("wireframe", false, "Render the viewer mesh as wireframe")
	flagFullscreen = flag.Bool("fullscreen", false, "Run viewer in fullscreen mode")
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
		cfg.Export.DumpMaze = true
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagSide > 0 {
		cfg.Terrain.Side = float32(*flagSide)
	}
	if *flagResolution > 0 {
		cfg.Terrain.Resolution = *flagResolution
	}
	if *flagOBJ != "" {
		cfg.Export.OBJPath = *flagOBJ
	}
	if *flagHeightmap != "" {
		cfg.Export.HeightmapPath = *flagHeightmap
	}
	if *flagPlacements != "" {
		cfg.Export.PlacementsPath = *flagPlacements
	}
	if *flagWireframe {
		cfg.Graphics.Wireframe = true
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
}
