// Package config handles generator configuration loading and management.
package config

// Config holds all generator and viewer settings.
type Config struct {
	Terrain  TerrainConfig  `yaml:"terrain"`
	Export   ExportConfig   `yaml:"export"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TerrainConfig holds generation parameters.
type TerrainConfig struct {
	OriginX    float32 `yaml:"origin_x"`
	OriginY    float32 `yaml:"origin_y"`
	OriginZ    float32 `yaml:"origin_z"`
	Side       float32 `yaml:"side"`
	Resolution int     `yaml:"resolution"`
	Seed       int64   `yaml:"seed"` // 0 picks a fresh seed per run
}

// ExportConfig holds output file paths; empty paths skip that export.
type ExportConfig struct {
	OBJPath        string `yaml:"obj_path"`
	HeightmapPath  string `yaml:"heightmap_path"`
	PlacementsPath string `yaml:"placements_path"`
	DumpMaze       bool   `yaml:"dump_maze"`
}

// GraphicsConfig holds viewer display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Side:       256,
			Resolution: 257,
			Seed:       0,
		},
		Export: ExportConfig{
			OBJPath: "terrain.obj",
		},
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
