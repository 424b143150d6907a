// Package bsp recursively partitions a rectangular grid region into
// leaf cells carrying random amplitude/octave metadata for terrain
// synthesis. Nodes live in a single arena slice addressed by index; the
// root is always index 0, so no back-pointers are needed for boundary
// queries and teardown is one slice drop.
package bsp

import (
	"fmt"
	"math/rand"

	clapmath "github.com/alsid/clap/pkg/math"
)

const (
	// MinWidth is the minimum leaf extent along either axis.
	MinWidth = 1
	// MaxAmplitude bounds the random amplitude assigned to leaves.
	MaxAmplitude = 8

	maxDepth   = 16
	forceDepth = 3
)

// Node is one partition rectangle in grid-cell units. Leaves (both
// child indices negative) carry the amplitude/octave pair used by the
// height synthesizer.
type Node struct {
	X, Y, W, H int
	Amp        float32
	Oct        int

	a, b int32 // child arena indices, -1 when leaf
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool {
	return n.a < 0 && n.b < 0
}

// Area returns the node's area in grid cells.
func (n *Node) Area() int {
	return n.W * n.H
}

func (n *Node) containsRect(x, y int) bool {
	return x >= n.X && x < n.X+n.W && y >= n.Y && y < n.Y+n.H
}

// containsEllipse tests against the ellipse inscribed in the node's
// rectangle. Half-axes use truncating integer division to match the
// rectangle's discrete center.
func (n *Node) containsEllipse(x, y int) bool {
	if !n.containsRect(x, y) {
		return false
	}
	xax := float32(n.W / 2)
	yax := float32(n.H / 2)
	dx := float32(x - (n.X + n.W/2))
	dy := float32(y - (n.Y + n.H/2))
	return dx*dx/(xax*xax)+dy*dy/(yax*yax) <= 1
}

// XFrac returns the signed fractional x-position of a point within the
// node, -1 at the left edge, 0 at the center column, approaching +1 at
// the right edge.
func (n *Node) XFrac(x int) float32 {
	return float32(x-n.X-n.W/2) / (float32(n.W) / 2)
}

// YFrac is the y-axis analogue of XFrac.
func (n *Node) YFrac(y int) float32 {
	return float32(y-n.Y-n.H/2) / (float32(n.H) / 2)
}

// Tree is an arena-allocated binary partition of a rectangle.
type Tree struct {
	nodes []Node
}

// Partition builds a tree over the given rectangle. All randomness
// comes from a single stream seeded with seed, so identical inputs
// yield identical trees.
func Partition(seed int64, x, y, w, h int) *Tree {
	rng := rand.New(rand.NewSource(seed))
	t := &Tree{nodes: make([]Node, 0, 64)}
	t.nodes = append(t.nodes, Node{X: x, Y: y, W: w, H: h, a: -1, b: -1})
	t.split(0, 0, rng)
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return &t.nodes[0]
}

// Child returns the i-th (0 or 1) child of a node, or nil for leaves.
func (t *Tree) Child(n *Node, i int) *Node {
	idx := n.a
	if i == 1 {
		idx = n.b
	}
	if idx < 0 {
		return nil
	}
	return &t.nodes[idx]
}

// split divides the node at idx into two children tiling it exactly,
// then recurses or finalizes each child as a leaf.
func (t *Tree) split(idx int32, level int, rng *rand.Rand) {
	vertical := level&1 == 1
	frac := clapmath.Clamp(rng.Float64(), 0.2, 0.8)

	n := t.nodes[idx]
	if n.W/n.H > 4 {
		vertical = true
	} else if n.H/n.W > 4 {
		vertical = false
	}

	a := Node{X: n.X, Y: n.Y, W: n.W, H: n.H, a: -1, b: -1}
	b := a
	if vertical {
		a.W = splitSpan(frac, n.W)
		b.X += a.W
		b.W -= a.W
		if a.W+b.W != n.W {
			panic(fmt.Sprintf("bsp: widths don't tile: %d+%d != %d", a.W, b.W, n.W))
		}
	} else {
		a.H = splitSpan(frac, n.H)
		b.Y += a.H
		b.H -= a.H
		if a.H+b.H != n.H {
			panic(fmt.Sprintf("bsp: heights don't tile: %d+%d != %d", a.H, b.H, n.H))
		}
	}

	ai := int32(len(t.nodes))
	t.nodes = append(t.nodes, a)
	bi := int32(len(t.nodes))
	t.nodes = append(t.nodes, b)
	t.nodes[idx].a = ai
	t.nodes[idx].b = bi

	for _, ci := range [2]int32{ai, bi} {
		if t.needsSplit(ci, level) {
			t.split(ci, level+1, rng)
		} else {
			t.finishLeaf(ci, level, rng)
		}
	}
}

// splitSpan converts the random fraction into the first child's extent,
// keeping at least MinWidth on both sides. The truncation plus the
// complementary subtraction is what keeps tiling exact.
func splitSpan(frac float64, span int) int {
	s := frac * float64(span)
	if s < MinWidth {
		s = MinWidth
	}
	if max := float64(span - MinWidth); s > max {
		s = max
	}
	return int(s)
}

// needsSplit decides whether a child keeps splitting. Stop conditions
// (minimum extent, depth cap) are checked before the forcing conditions
// (oversized area, shallow depth), giving denser partitioning near the
// root and coarser leaves elsewhere.
func (t *Tree) needsSplit(idx int32, level int) bool {
	n := &t.nodes[idx]
	if n.W == MinWidth*2 || n.H == MinWidth*2 {
		return false
	}
	if level > maxDepth {
		return false
	}
	if n.W/n.H > 4 || n.H/n.W > 4 {
		return true
	}
	if n.Area() > t.nodes[0].Area()/4 {
		return true
	}
	return level < forceDepth
}

// finishLeaf assigns the leaf's amplitude/octave pair. Amplitude is
// clamped harder at deeper levels.
func (t *Tree) finishLeaf(idx int32, level int, rng *rand.Rand) {
	amp := rng.Float64() * MaxAmplitude
	if cap := float64(maxDepth-level) * 3; amp > cap {
		amp = cap
	}
	t.nodes[idx].Amp = float32(amp)
	t.nodes[idx].Oct = rng.Intn(4) + 3
}

// within is the region test used during descent: a plain rectangle test
// while the larger child still has grandchildren, the inscribed ellipse
// once it does not. The ellipse is what rounds off amplitude seams.
func (t *Tree) within(n *Node, x, y int) bool {
	if n.a >= 0 && t.nodes[n.a].a >= 0 {
		return n.containsRect(x, y)
	}
	return n.containsEllipse(x, y)
}

// Find locates the leaf whose region test captures (x, y). Points that
// fall outside the larger child's region drop into the smaller child,
// which also gives out-of-rectangle queries a deterministic answer.
func (t *Tree) Find(x, y int) *Node {
	it := &t.nodes[0]
	for !it.Leaf() {
		a := &t.nodes[it.a]
		b := &t.nodes[it.b]
		if a.Area() < b.Area() {
			a, b = b, a
		}
		if t.within(a, x, y) {
			it = a
		} else {
			it = b
		}
	}
	return it
}

// XNeighbor returns the leaf across the node's left or right boundary,
// whichever is closer to x. At the root's outer edge the node itself is
// returned; the partition space does not wrap.
func (t *Tree) XNeighbor(n *Node, x, y int) *Node {
	root := &t.nodes[0]
	if n.XFrac(x) >= 0 {
		if x >= root.X+root.W {
			return n
		}
		return t.Find(n.X+n.W, y)
	}
	if x <= root.X {
		return n
	}
	return t.Find(n.X-1, y)
}

// YNeighbor is the y-axis analogue of XNeighbor.
func (t *Tree) YNeighbor(n *Node, x, y int) *Node {
	root := &t.nodes[0]
	if n.YFrac(y) >= 0 {
		if y >= root.Y+root.H {
			return n
		}
		return t.Find(x, n.Y+n.H)
	}
	if y <= root.Y {
		return n
	}
	return t.Find(x, n.Y-1)
}
