package automaton

// MazeRule carves broad terrain-roughness rooms. Cells decay through 4
// states; births need 2-3 live neighbors, survival 7-8.
var MazeRule = Rule{
	Name:      "maze",
	Born:      3 << 2,
	Survive:   3 << 7,
	States:    4,
	Decay:     true,
	Neighbors: Moore,
}

// PlacementRules mark cells where decorative content spawns. Each rule
// is stepped once over the settled maze grid; cells that reach the
// rule's exact States value become placement sites tagged with the
// rule's name. The greater-than neighborhoods make sites cluster on
// room boundaries.
var PlacementRules = []Rule{
	{
		Name:      "cool tree",
		Born:      0x3f,
		Survive:   0xff,
		States:    20,
		Neighbors: MooreAbove,
	},
	{
		Name:      "ash pinus",
		Born:      0xff,
		Survive:   0xff,
		States:    21,
		Neighbors: MooreAbove,
	},
}
