package terrain

import (
	stdmath "math"
	"runtime"
	"sync"
	"time"

	"github.com/alsid/clap/internal/engine/automaton"
	"github.com/alsid/clap/internal/engine/bsp"
	"github.com/alsid/clap/internal/logger"
	"github.com/alsid/clap/pkg/math"
)

// mazeSalt decorrelates the maze automaton's per-cell draws from the
// height lattice draws, which hash the same low coordinates.
const mazeSalt = 0x6d617a65

// Generate builds a terrain and its placement list in one pass.
// Identical Params (with a non-zero Seed) produce bit-identical output.
func Generate(p Params) (*Terrain, []PlacementPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t := &Terrain{
		seed:       seed,
		origin:     p.Origin,
		side:       p.Side,
		resolution: p.Resolution,
		heights:    make([]float32, p.Resolution*p.Resolution),
	}

	mside := p.Resolution / MazeFactor
	maze := automaton.NewGrid(mside)
	maze.SeedRandom(seed^mazeSalt, automaton.MazeRule)
	maze.StepN(automaton.MazeRule, 3)
	logger.Sugar.Debugf("maze settled after 3 steps:\n%s", maze)

	tree := bsp.Partition(seed, 0, 0, p.Resolution, p.Resolution)
	synth := newSynthesizer(seed, p.Resolution, p.Origin.Y)

	t.fillHeights(tree, maze, synth)

	// The partition and the raw lattice are only needed during the
	// fill; from here on the height grid is the single source of truth.
	tree = nil
	synth = nil

	points := placePoints(t, maze, automaton.PlacementRules)
	logger.Sugar.Debugf("terrain generated: seed=%d resolution=%d placements=%d",
		seed, p.Resolution, len(points))

	return t, points, nil
}

// fillHeights computes every cell of the height grid. Cells are
// independent, so rows are chunked across workers; each worker writes
// disjoint indices and no synchronization is needed beyond the join.
func (t *Terrain) fillHeights(tree *bsp.Tree, maze *automaton.Grid, synth *synthesizer) {
	res := t.resolution
	workers := runtime.GOMAXPROCS(0)
	if workers > res {
		workers = res
	}
	chunk := (res + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < res; start += chunk {
		end := start + chunk
		if end > res {
			end = res
		}
		wg.Add(1)
		go func(x0, x1 int) {
			defer wg.Done()
			for x := x0; x < x1; x++ {
				for z := 0; z < res; z++ {
					t.heights[x*res+z] = cellHeight(tree, maze, synth, res, x, z)
				}
			}
		}(start, end)
	}
	wg.Wait()
}

// cellHeight resolves one grid cell: BSP-blended amplitude and octave
// count, maze-room modulation, then the fractal sample. Fill indexes
// wrap at resolution-1 so the last row and column duplicate the first,
// which is what makes the wrap seam exact.
func cellHeight(tree *bsp.Tree, maze *automaton.Grid, synth *synthesizer, res, x, z int) float32 {
	wx := x % (res - 1)
	wz := z % (res - 1)

	leaf := tree.Find(wx, wz)
	nx := tree.XNeighbor(leaf, wx, wz)
	ny := tree.YNeighbor(leaf, wx, wz)
	xfrac := leaf.XFrac(wx)
	yfrac := leaf.YFrac(wz)

	xamp := math.CosInterp(leaf.Amp, nx.Amp, abs(xfrac))
	yamp := math.CosInterp(leaf.Amp, ny.Amp, abs(yfrac))
	amp := math.CosInterp(xamp, yamp, abs(xfrac-yfrac))

	xoct := math.CosInterp(float32(leaf.Oct), float32(nx.Oct), abs(xfrac))
	yoct := math.CosInterp(float32(leaf.Oct), float32(ny.Oct), abs(yfrac))
	oct := int(stdmath.Round(float64(math.CosInterp(xoct, yoct, abs(xfrac-yfrac)))))

	room := roomBlend(maze, wx, wz)

	// Quiet rooms damp the amplitude (gain <= 1) and every room lifts
	// the floor by its settled state, carving plateau steps between
	// rough and calm regions.
	gain := float32(stdmath.Pow(1.5, float64(room-float32(automaton.MazeRule.States))))
	return synth.Sample(float32(wx), float32(wz), oct, amp*gain) + room
}

// MazeDump rebuilds the settled maze for a seed and resolution and
// renders it as ASCII art. Deterministic for a given pair, so it can be
// reproduced after the fact from a terrain's Seed and Resolution.
func MazeDump(seed int64, resolution int) string {
	maze := automaton.NewGrid(resolution / MazeFactor)
	maze.SeedRandom(seed^mazeSalt, automaton.MazeRule)
	maze.StepN(automaton.MazeRule, 3)
	return maze.String()
}

// roomBlend cosine-blends the maze cell's settled state with its x/y
// neighbors, picking the neighbor on the side of the cell the
// coordinate falls in. Higher rooms dominate: blending only pulls a
// cell's value up, never down.
func roomBlend(maze *automaton.Grid, x, z int) float32 {
	fx := float32(x%MazeFactor) / MazeFactor
	fz := float32(z%MazeFactor) / MazeFactor
	cx := x / MazeFactor
	cz := z / MazeFactor

	cn := float32(maze.Get(cx, cz))

	nxc := cx - 1
	if fx >= 0.5 {
		nxc = cx + 1
	}
	xn := float32(maze.Get(nxc, cz))

	nzc := cz - 1
	if fz >= 0.5 {
		nzc = cz + 1
	}
	zn := float32(maze.Get(cx, nzc))

	xavg := cn
	if cn <= xn {
		xavg = math.CosInterp(cn, xn, 2*fx-1)
	}
	zavg := cn
	if cn <= zn {
		zavg = math.CosInterp(cn, zn, 2*fz-1)
	}
	return math.CosInterp(xavg, zavg, abs(fx-fz))
}

// placePoints steps each placement rule once over the settled maze
// grid, then collects every cell that landed on a rule's exact state
// as a placement point at the cell's world center.
func placePoints(t *Terrain, maze *automaton.Grid, rules []automaton.Rule) []PlacementPoint {
	for _, rule := range rules {
		maze.Step(rule)
	}

	square := MazeFactor * t.side / float32(t.resolution-1)
	var points []PlacementPoint
	for i := 0; i < maze.Side; i++ {
		for j := 0; j < maze.Side; j++ {
			v := maze.Get(i, j)
			for _, rule := range rules {
				if v != rule.States {
					continue
				}
				px := t.origin.X + (float32(i)+0.5)*square
				pz := t.origin.Z + (float32(j)+0.5)*square
				points = append(points, PlacementPoint{
					Kind: rule.Name,
					X:    px,
					Y:    t.HeightAt(px, pz),
					Z:    pz,
				})
			}
		}
	}
	return points
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
