// Package terrain synthesizes a bounded, toroidally wrapped heightfield
// and a companion placement list for secondary content, then answers
// deterministic height/normal queries over the finished grid.
//
// Generation is a single synchronous pass: an amplitude partition and a
// maze automaton are built first, the height grid is filled from seeded
// fractal noise shaped by both, and finally the placement rules walk
// the settled maze to emit spawn points. Everything derives from one
// seed; the same seed and parameters always reproduce the same terrain.
package terrain

import (
	"fmt"

	"github.com/alsid/clap/pkg/math"
)

const (
	// Roughness is the per-octave amplitude falloff.
	Roughness = 0.5
	// MazeFactor is the number of height-grid cells per maze cell.
	MazeFactor = 8
	// UVTiling is how many times the ground texture repeats across the
	// terrain in each direction.
	UVTiling = 32
)

// Params configures terrain generation. Seed 0 requests a time-derived
// seed; tests inject explicit seeds for reproducibility.
type Params struct {
	Origin     math.Vec3
	Side       float32
	Resolution int
	Seed       int64
}

// Validate rejects malformed parameters before any generation work.
// The generation algorithms themselves assume validated inputs.
func (p Params) Validate() error {
	if p.Side <= 0 {
		return fmt.Errorf("terrain: side must be positive, got %v", p.Side)
	}
	if p.Resolution < 2*MazeFactor {
		return fmt.Errorf("terrain: resolution must be at least %d, got %d",
			2*MazeFactor, p.Resolution)
	}
	return nil
}

// PlacementPoint is a world-space location flagged for spawning
// external decorative content.
type PlacementPoint struct {
	Kind string  `yaml:"kind"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	Z    float32 `yaml:"z"`
}

// Terrain owns the finished height grid. Once built it is immutable,
// so concurrent readers need no locking.
type Terrain struct {
	seed       int64
	origin     math.Vec3
	side       float32
	resolution int
	heights    []float32 // row-major by x: heights[x*resolution+z]
}

// Seed returns the seed the terrain was generated from.
func (t *Terrain) Seed() int64 { return t.seed }

// Origin returns the world-space origin corner.
func (t *Terrain) Origin() math.Vec3 { return t.origin }

// Side returns the world-space extent along each axis.
func (t *Terrain) Side() float32 { return t.side }

// Resolution returns the number of vertices per side.
func (t *Terrain) Resolution() int { return t.resolution }

// HeightMap exposes the raw height grid, indexed [x*Resolution+z].
// Callers must treat it as read-only.
func (t *Terrain) HeightMap() []float32 { return t.heights }

func (t *Terrain) height(x, z int) float32 {
	return t.heights[x*t.resolution+z]
}
