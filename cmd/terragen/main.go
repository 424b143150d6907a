// Package main is the terrain generator CLI: it builds a heightfield
// from the configured parameters and writes the requested exports.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/alsid/clap/internal/config"
	"github.com/alsid/clap/internal/engine/terrain"
	"github.com/alsid/clap/internal/export"
	"github.com/alsid/clap/internal/logger"
	"github.com/alsid/clap/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	tr, points, err := terrain.Generate(terrain.Params{
		Origin: math.Vec3{
			X: cfg.Terrain.OriginX,
			Y: cfg.Terrain.OriginY,
			Z: cfg.Terrain.OriginZ,
		},
		Side:       cfg.Terrain.Side,
		Resolution: cfg.Terrain.Resolution,
		Seed:       cfg.Terrain.Seed,
	})
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("terrain generated",
		zap.Int64("seed", tr.Seed()),
		zap.Int("resolution", tr.Resolution()),
		zap.Int("placements", len(points)),
	)

	if cfg.Export.DumpMaze {
		fmt.Println(terrain.MazeDump(tr.Seed(), tr.Resolution()))
	}

	if path := cfg.Export.OBJPath; path != "" {
		if err := export.WriteOBJ(path, tr.BuildMesh()); err != nil {
			logger.Error("obj export failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("obj written", zap.String("path", path))
	}
	if path := cfg.Export.HeightmapPath; path != "" {
		if err := export.WriteHeightmapPNG(path, tr); err != nil {
			logger.Error("heightmap export failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("heightmap written", zap.String("path", path))
	}
	if path := cfg.Export.PlacementsPath; path != "" {
		if err := export.WritePlacements(path, tr.Seed(), points); err != nil {
			logger.Error("placements export failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("placements written", zap.String("path", path))
	}
}
