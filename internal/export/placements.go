package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alsid/clap/internal/engine/terrain"
)

// placementManifest is the on-disk shape of the placement export: the
// seed ties the manifest back to the terrain it was generated with.
type placementManifest struct {
	Seed   int64                    `yaml:"seed"`
	Points []terrain.PlacementPoint `yaml:"points"`
}

// WritePlacements writes the placement list as a YAML manifest.
func WritePlacements(path string, seed int64, points []terrain.PlacementPoint) error {
	data, err := yaml.Marshal(placementManifest{Seed: seed, Points: points})
	if err != nil {
		return fmt.Errorf("encoding placements: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing placements: %w", err)
	}
	return nil
}

// ReadPlacements loads a placement manifest written by WritePlacements.
func ReadPlacements(path string) (int64, []terrain.PlacementPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, fmt.Errorf("reading placements: %w", err)
	}
	var m placementManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return 0, nil, fmt.Errorf("decoding placements: %w", err)
	}
	return m.Seed, m.Points, nil
}
