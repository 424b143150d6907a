package terrain

import (
	stdmath "math"

	"github.com/alsid/clap/pkg/math"
)

// HeightAt returns the interpolated terrain height at a world position.
// Positions outside the terrain rectangle return 0: physics code probes
// speculatively for entities near the edge, so this is a sentinel, not
// an error.
func (t *Terrain) HeightAt(x, z float32) float32 {
	if x < t.origin.X || x > t.origin.X+t.side ||
		z < t.origin.Z || z > t.origin.Z+t.side {
		return 0
	}

	gridX, gridZ, xoff, zoff := t.locate(x, z)

	pos := math.Vec2{X: xoff, Y: zoff}
	if xoff <= 1-zoff {
		// Upper-left triangle of the cell.
		return math.Barycentric(
			math.Vec3{X: 0, Y: t.height(gridX, gridZ), Z: 0},
			math.Vec3{X: 1, Y: t.height(gridX+1, gridZ), Z: 0},
			math.Vec3{X: 0, Y: t.height(gridX, gridZ+1), Z: 1},
			pos,
		)
	}
	return math.Barycentric(
		math.Vec3{X: 1, Y: t.height(gridX+1, gridZ), Z: 0},
		math.Vec3{X: 1, Y: t.height(gridX+1, gridZ+1), Z: 1},
		math.Vec3{X: 0, Y: t.height(gridX, gridZ+1), Z: 1},
		pos,
	)
}

// NormalAt returns the surface normal at a world position. Outside the
// terrain rectangle the sentinel is straight up.
func (t *Terrain) NormalAt(x, z float32) math.Vec3 {
	if x < t.origin.X || x > t.origin.X+t.side ||
		z < t.origin.Z || z > t.origin.Z+t.side {
		return math.Vec3{Y: 1}
	}
	gridX, gridZ, _, _ := t.locate(x, z)
	return t.vertexNormal(gridX, gridZ)
}

// locate converts a world position to a grid cell plus fractional
// offsets in [0,1]. Positions pinned to the far edge clamp onto the
// last cell with offset 1, which lands on the duplicated seam row.
func (t *Terrain) locate(x, z float32) (gridX, gridZ int, xoff, zoff float32) {
	square := t.side / float32(t.resolution-1)
	tx := x - t.origin.X
	tz := z - t.origin.Z
	gridX = int(stdmath.Floor(float64(tx / square)))
	gridZ = int(stdmath.Floor(float64(tz / square)))
	xoff = (tx - square*float32(gridX)) / square
	zoff = (tz - square*float32(gridZ)) / square

	if gridX >= t.resolution-1 {
		gridX = t.resolution - 2
		xoff = 1
	}
	if gridZ >= t.resolution-1 {
		gridZ = t.resolution - 2
		zoff = 1
	}
	if gridX < 0 {
		gridX = 0
		xoff = 0
	}
	if gridZ < 0 {
		gridZ = 0
		zoff = 0
	}
	return gridX, gridZ, xoff, zoff
}

// vertexNormal is the central-difference normal at an integer grid
// vertex. Interior neighbors wrap toroidally; at the outer edges the
// missing outward neighbor is treated as height 0. That produces a
// visible rim along the boundary which the rest of the engine relies
// on, so it stays.
func (t *Terrain) vertexNormal(x, z int) math.Vec3 {
	res := t.resolution
	left := x - 1
	if x == 0 {
		left = res - 1
	}
	right := x + 1
	if x == res-1 {
		right = 0
	}
	up := z - 1
	if z == 0 {
		up = res - 1
	}
	down := z + 1
	if z == res-1 {
		down = 0
	}

	var hl, hr, hd, hu float32
	if x != 0 {
		hl = t.height(left, z)
	}
	if x != res-1 {
		hr = t.height(right, z)
	}
	if z != 0 {
		hd = t.height(x, up)
	}
	if z != res-1 {
		hu = t.height(x, down)
	}

	return math.Vec3{X: hl - hr, Y: 2, Z: hd - hu}.Normalize()
}
