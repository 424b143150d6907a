package terrain

import (
	stdmath "math"
	"testing"

	"github.com/alsid/clap/internal/engine/automaton"
	"github.com/alsid/clap/internal/engine/bsp"
	"github.com/alsid/clap/pkg/math"
)

func testParams() Params {
	return Params{
		Origin:     math.Vec3{X: 0, Y: 0, Z: 0},
		Side:       128,
		Resolution: 65,
		Seed:       42,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"valid", func(p *Params) {}, false},
		{"zero side", func(p *Params) { p.Side = 0 }, true},
		{"negative side", func(p *Params) { p.Side = -10 }, true},
		{"tiny resolution", func(p *Params) { p.Resolution = 8 }, true},
		{"minimum resolution", func(p *Params) { p.Resolution = 16 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, pa, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, pb, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i := range a.heights {
		if a.heights[i] != b.heights[i] {
			t.Fatalf("height %d differs: %v != %v", i, a.heights[i], b.heights[i])
		}
	}
	if len(pa) != len(pb) {
		t.Fatalf("placement counts differ: %d != %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("placement %d differs: %+v != %+v", i, pa[i], pb[i])
		}
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	a, _, _ := Generate(testParams())
	p := testParams()
	p.Seed = 43
	b, _, _ := Generate(p)

	same := true
	for i := range a.heights {
		if a.heights[i] != b.heights[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical height maps")
	}
}

func TestSeamContinuity(t *testing.T) {
	tr, _, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	side := tr.Side()
	for i := 0; i < 50; i++ {
		c := side * float32(i) / 50
		if l, r := tr.HeightAt(0, c), tr.HeightAt(side, c); absDiff(l, r) > 1e-3 {
			t.Errorf("x seam discontinuous at z=%v: %v != %v", c, l, r)
		}
		if l, r := tr.HeightAt(c, 0), tr.HeightAt(c, side); absDiff(l, r) > 1e-3 {
			t.Errorf("z seam discontinuous at x=%v: %v != %v", c, l, r)
		}
	}
}

func TestCornerHeightsMatchMap(t *testing.T) {
	tr, _, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	res := tr.Resolution()
	side := tr.Side()
	corners := []struct {
		x, z float32
		gx   int
		gz   int
	}{
		{0, 0, 0, 0},
		{side, 0, res - 1, 0},
		{0, side, 0, res - 1},
		{side, side, res - 1, res - 1},
	}
	for _, c := range corners {
		want := tr.height(c.gx, c.gz)
		got := tr.HeightAt(c.x, c.z)
		if absDiff(got, want) > 1e-3 {
			t.Errorf("HeightAt(%v,%v) = %v, want map[%d][%d] = %v",
				c.x, c.z, got, c.gx, c.gz, want)
		}
	}
}

func TestOutOfBoundsSentinels(t *testing.T) {
	tr, _, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	outside := [][2]float32{
		{-0.1, 10}, {128.1, 10}, {10, -5}, {10, 200}, {-50, -50},
	}
	for _, p := range outside {
		if h := tr.HeightAt(p[0], p[1]); h != 0 {
			t.Errorf("HeightAt(%v,%v) = %v, want sentinel 0", p[0], p[1], h)
		}
		if n := tr.NormalAt(p[0], p[1]); n != (math.Vec3{Y: 1}) {
			t.Errorf("NormalAt(%v,%v) = %v, want up sentinel", p[0], p[1], n)
		}
	}
}

func TestHeightBounds(t *testing.T) {
	tr, _, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Max amplitude 8 across at most 6 octaves of 0.5 falloff, plus the
	// maze room lift of at most MazeRule.States.
	var octaveSum float32
	for i := 0; i < 6; i++ {
		octaveSum += float32(stdmath.Pow(Roughness, float64(i)))
	}
	bound := bsp.MaxAmplitude*octaveSum + float32(automaton.MazeRule.States) + 1e-3

	for i := 0; i <= 64; i++ {
		for j := 0; j <= 64; j++ {
			x := tr.Side() * float32(i) / 64
			z := tr.Side() * float32(j) / 64
			h := tr.HeightAt(x, z)
			if d := absDiff(h, tr.Origin().Y); d > bound {
				t.Fatalf("HeightAt(%v,%v) = %v exceeds bound %v", x, z, h, bound)
			}
		}
	}
}

func TestHeightAtInterpolatesWithinCell(t *testing.T) {
	tr := flatTerrain(65, 128, 0)
	res := tr.resolution
	// A single raised vertex pulls nearby samples up, and the pull
	// decays with distance inside the two adjacent triangles.
	tr.heights[2*res+2] = 10

	square := tr.side / float32(res-1)
	peak := tr.HeightAt(2*square, 2*square)
	if absDiff(peak, 10) > 1e-4 {
		t.Fatalf("height at raised vertex = %v, want 10", peak)
	}
	mid := tr.HeightAt(2.5*square, 2*square)
	if mid <= 0 || mid >= peak {
		t.Errorf("height midway off the peak = %v, want between 0 and %v", mid, peak)
	}
}

func TestPlacementSingleCell(t *testing.T) {
	// Exactly one cell reaches the rule's state after one step: the
	// center of this U shape has exactly 5 Moore neighbors.
	rule := automaton.Rule{
		Name:      "shrub",
		Born:      1 << 5,
		States:    9,
		Neighbors: automaton.Moore,
	}
	maze := automaton.NewGrid(8)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}} {
		maze.Set(c[0], c[1], 1)
	}

	tr := flatTerrain(65, 128, 0)
	for i := range tr.heights {
		tr.heights[i] = float32(i%7) - 3
	}

	points := placePoints(tr, maze, []automaton.Rule{rule})
	if len(points) != 1 {
		t.Fatalf("got %d placement points, want 1", len(points))
	}
	p := points[0]
	if p.Kind != "shrub" {
		t.Errorf("point kind = %q, want %q", p.Kind, "shrub")
	}

	square := MazeFactor * tr.side / float32(tr.resolution-1)
	wantX := 2.5 * square
	wantZ := 2.5 * square
	if absDiff(p.X, wantX) > 1e-4 || absDiff(p.Z, wantZ) > 1e-4 {
		t.Errorf("point at (%v,%v), want cell center (%v,%v)", p.X, p.Z, wantX, wantZ)
	}
	if want := tr.HeightAt(p.X, p.Z); p.Y != want {
		t.Errorf("point height = %v, want HeightAt = %v", p.Y, want)
	}
}

func TestPlacementKindsFromGenerate(t *testing.T) {
	_, points, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	known := map[string]bool{}
	for _, r := range automaton.PlacementRules {
		known[r.Name] = true
	}
	for _, p := range points {
		if !known[p.Kind] {
			t.Errorf("placement point with unknown kind %q", p.Kind)
		}
	}
}

func TestMazeDump(t *testing.T) {
	a := MazeDump(42, 64)
	if a != MazeDump(42, 64) {
		t.Error("MazeDump not deterministic")
	}
	if a == MazeDump(43, 64) {
		t.Error("MazeDump identical across seeds")
	}

	lines := 0
	for _, c := range a {
		if c == '\n' {
			lines++
		}
	}
	if want := 64 / MazeFactor; lines != want {
		t.Errorf("dump has %d rows, want %d", lines, want)
	}
}

// flatTerrain builds a terrain with constant height for query tests.
func flatTerrain(res int, side, h float32) *Terrain {
	t := &Terrain{
		side:       side,
		resolution: res,
		heights:    make([]float32, res*res),
	}
	for i := range t.heights {
		t.heights[i] = h
	}
	return t
}

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}
