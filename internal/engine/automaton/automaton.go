// Package automaton implements a generic 2D cellular automaton on a
// square toroidal byte grid. The terrain builder runs it twice: once
// with the maze rule to carve broad roughness rooms, and once per
// placement rule to flag cells where decorative content spawns.
package automaton

import (
	"strings"

	"github.com/alsid/clap/internal/engine/noise"
)

// Neighborhood selects how a cell's neighbor count is computed.
type Neighborhood uint8

const (
	// Ortho counts the 4 orthogonal neighbors that are non-zero.
	Ortho Neighborhood = iota
	// Moore counts all 8 neighbors that are non-zero.
	Moore
	// OrthoAbove counts the 4 orthogonal neighbors strictly greater
	// than the cell's own value.
	OrthoAbove
	// MooreAbove counts all 8 neighbors strictly greater than the
	// cell's own value.
	MooreAbove
)

// Rule describes one automaton. Born and Survive are bitmasks over
// neighbor counts 0..8: a dead cell with n neighbors is born when bit n
// of Born is set; a live cell keeps its value when bit n of Survive is
// set, otherwise it decrements when Decay is set.
type Rule struct {
	Name      string
	Born      uint32
	Survive   uint32
	States    uint8
	Decay     bool
	Neighbors Neighborhood
}

// Grid is a square toroidal grid of cell states in [0, States].
type Grid struct {
	Side  int
	Cells []uint8
}

// NewGrid returns a zeroed side x side grid.
func NewGrid(side int) *Grid {
	return &Grid{Side: side, Cells: make([]uint8, side*side)}
}

// Get returns the cell at (x, y), wrapping both coordinates toroidally.
func (g *Grid) Get(x, y int) uint8 {
	x = wrap(x, g.Side)
	y = wrap(y, g.Side)
	return g.Cells[y*g.Side+x]
}

// Set writes the cell at (x, y), wrapping both coordinates toroidally.
func (g *Grid) Set(x, y int, v uint8) {
	x = wrap(x, g.Side)
	y = wrap(y, g.Side)
	g.Cells[y*g.Side+x] = v
}

func wrap(i, side int) int {
	i %= side
	if i < 0 {
		i += side
	}
	return i
}

// SeedRandom fills the grid from per-cell seeded draws: each cell is
// independently set to rule.States with probability (States+1)/8,
// otherwise 0. The draw depends only on (seed, x, y), never on a shared
// stream, so any cell can be recomputed in isolation.
func (g *Grid) SeedRandom(seed int64, rule Rule) {
	for y := 0; y < g.Side; y++ {
		for x := 0; x < g.Side; x++ {
			v := noise.Hash(seed, int32(x), int32(y)) % 8
			if v <= uint32(rule.States) {
				g.Cells[y*g.Side+x] = rule.States
			} else {
				g.Cells[y*g.Side+x] = 0
			}
		}
	}
}

func (g *Grid) neighbors(rule Rule, x, y int) int {
	n := 0
	switch rule.Neighbors {
	case Ortho:
		n = g.countNonZero(x, y, false)
	case Moore:
		n = g.countNonZero(x, y, true)
	case OrthoAbove:
		n = g.countAbove(x, y, false)
	case MooreAbove:
		n = g.countAbove(x, y, true)
	}
	return n
}

func (g *Grid) countNonZero(x, y int, diagonals bool) int {
	n := 0
	if g.Get(x+1, y) != 0 {
		n++
	}
	if g.Get(x-1, y) != 0 {
		n++
	}
	if g.Get(x, y+1) != 0 {
		n++
	}
	if g.Get(x, y-1) != 0 {
		n++
	}
	if diagonals {
		if g.Get(x+1, y+1) != 0 {
			n++
		}
		if g.Get(x-1, y+1) != 0 {
			n++
		}
		if g.Get(x+1, y-1) != 0 {
			n++
		}
		if g.Get(x-1, y-1) != 0 {
			n++
		}
	}
	return n
}

func (g *Grid) countAbove(x, y int, diagonals bool) int {
	v := g.Get(x, y)
	n := 0
	if g.Get(x+1, y) > v {
		n++
	}
	if g.Get(x-1, y) > v {
		n++
	}
	if g.Get(x, y+1) > v {
		n++
	}
	if g.Get(x, y-1) > v {
		n++
	}
	if diagonals {
		if g.Get(x+1, y+1) > v {
			n++
		}
		if g.Get(x-1, y+1) > v {
			n++
		}
		if g.Get(x+1, y-1) > v {
			n++
		}
		if g.Get(x-1, y-1) > v {
			n++
		}
	}
	return n
}

// Step advances the grid by one generation. Every cell is computed from
// the previous generation only; writes go to a scratch buffer that is
// swapped in at the end.
func (g *Grid) Step(rule Rule) {
	next := make([]uint8, len(g.Cells))
	g.stepInto(rule, next)
	g.Cells = next
}

// StepN advances the grid by n generations.
func (g *Grid) StepN(rule Rule, n int) {
	next := make([]uint8, len(g.Cells))
	for i := 0; i < n; i++ {
		g.stepInto(rule, next)
		g.Cells, next = next, g.Cells
	}
}

func (g *Grid) stepInto(rule Rule, next []uint8) {
	for y := 0; y < g.Side; y++ {
		for x := 0; x < g.Side; x++ {
			n := g.neighbors(rule, x, y)
			v := g.Cells[y*g.Side+x]

			switch {
			case v == 0 && rule.Born&(1<<n) != 0:
				v = rule.States
			case v != 0 && rule.Survive&(1<<n) != 0:
				// keep
			case v != 0 && rule.Decay:
				v--
			}
			next[y*g.Side+x] = v
		}
	}
}

// glyph ramp for debug dumps, dense states render darker
const glyphs = " .+oO############_^tTF"

// String renders the grid as ASCII art for debug logging.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Side; y++ {
		for x := 0; x < g.Side; x++ {
			v := int(g.Cells[y*g.Side+x])
			if v >= len(glyphs) {
				v = len(glyphs) - 1
			}
			sb.WriteByte(glyphs[v])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
