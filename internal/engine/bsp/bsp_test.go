package bsp

import "testing"

// walk visits every node, passing the depth-first index pair.
func walk(t *Tree, n *Node, fn func(n *Node)) {
	fn(n)
	if n.Leaf() {
		return
	}
	walk(t, t.Child(n, 0), fn)
	walk(t, t.Child(n, 1), fn)
}

func TestTilingInvariant(t *testing.T) {
	for _, seed := range []int64{1, 42, 987654321} {
		for _, size := range []int{16, 33, 64, 128} {
			tree := Partition(seed, 0, 0, size, size)
			walk(tree, tree.Root(), func(n *Node) {
				if n.Leaf() {
					return
				}
				a, b := tree.Child(n, 0), tree.Child(n, 1)
				if a.Area()+b.Area() != n.Area() {
					t.Errorf("seed %d size %d: child areas %d+%d != parent %d",
						seed, size, a.Area(), b.Area(), n.Area())
				}
				// Children stay inside the parent rectangle.
				for _, c := range []*Node{a, b} {
					if c.X < n.X || c.Y < n.Y || c.X+c.W > n.X+n.W || c.Y+c.H > n.Y+n.H {
						t.Errorf("seed %d size %d: child (%d,%d,%d,%d) escapes parent (%d,%d,%d,%d)",
							seed, size, c.X, c.Y, c.W, c.H, n.X, n.Y, n.W, n.H)
					}
				}
			})
		}
	}
}

func TestLeafMetadataRanges(t *testing.T) {
	tree := Partition(42, 0, 0, 65, 65)
	leaves := 0
	walk(tree, tree.Root(), func(n *Node) {
		if !n.Leaf() {
			return
		}
		leaves++
		if n.Amp < 0 || n.Amp > MaxAmplitude {
			t.Errorf("leaf amplitude %v out of [0,%d]", n.Amp, MaxAmplitude)
		}
		if n.Oct < 3 || n.Oct > 6 {
			t.Errorf("leaf octaves %d out of [3,6]", n.Oct)
		}
	})
	if leaves < 8 {
		t.Errorf("only %d leaves for a 65x65 partition, expected forced splits near root", leaves)
	}
}

func TestPartitionDeterministic(t *testing.T) {
	a := Partition(7, 0, 0, 64, 64)
	b := Partition(7, 0, 0, 64, 64)
	if len(a.nodes) != len(b.nodes) {
		t.Fatalf("node counts differ: %d != %d", len(a.nodes), len(b.nodes))
	}
	for i := range a.nodes {
		if a.nodes[i] != b.nodes[i] {
			t.Fatalf("node %d differs: %+v != %+v", i, a.nodes[i], b.nodes[i])
		}
	}

	c := Partition(8, 0, 0, 64, 64)
	if len(c.nodes) == len(a.nodes) {
		same := true
		for i := range a.nodes {
			if a.nodes[i] != c.nodes[i] {
				same = false
				break
			}
		}
		if same {
			t.Error("different seeds produced identical trees")
		}
	}
}

func TestFindReturnsLeaf(t *testing.T) {
	tree := Partition(42, 0, 0, 64, 64)
	for y := 0; y < 64; y += 3 {
		for x := 0; x < 64; x += 3 {
			n := tree.Find(x, y)
			if n == nil || !n.Leaf() {
				t.Fatalf("Find(%d,%d) did not return a leaf", x, y)
			}
			if m := tree.Find(x, y); m != n {
				t.Fatalf("Find(%d,%d) not deterministic", x, y)
			}
		}
	}
}

func TestNeighborQueries(t *testing.T) {
	tree := Partition(42, 0, 0, 64, 64)
	for y := 1; y < 63; y += 7 {
		for x := 1; x < 63; x += 7 {
			n := tree.Find(x, y)
			nx := tree.XNeighbor(n, x, y)
			ny := tree.YNeighbor(n, x, y)
			if nx == nil || !nx.Leaf() {
				t.Fatalf("XNeighbor at (%d,%d) not a leaf", x, y)
			}
			if ny == nil || !ny.Leaf() {
				t.Fatalf("YNeighbor at (%d,%d) not a leaf", x, y)
			}
		}
	}
}

func TestNeighborAtRootEdge(t *testing.T) {
	// The partition space does not wrap: a query pinned to the root's
	// outer column returns the node itself.
	tree := Partition(42, 0, 0, 64, 64)
	n := tree.Find(0, 10)
	if n.XFrac(0) < 0 {
		if got := tree.XNeighbor(n, 0, 10); got != n {
			t.Error("XNeighbor at the left root edge should return the node itself")
		}
	}
	m := tree.Find(10, 0)
	if m.YFrac(0) < 0 {
		if got := tree.YNeighbor(m, 10, 0); got != m {
			t.Error("YNeighbor at the top root edge should return the node itself")
		}
	}
}

func TestFracSigns(t *testing.T) {
	n := &Node{X: 0, Y: 0, W: 10, H: 10}
	if f := n.XFrac(0); f >= 0 {
		t.Errorf("XFrac at left edge = %v, want negative", f)
	}
	if f := n.XFrac(9); f <= 0 {
		t.Errorf("XFrac at right edge = %v, want positive", f)
	}
	if f := n.XFrac(5); f != 0 {
		t.Errorf("XFrac at center = %v, want 0", f)
	}
}
