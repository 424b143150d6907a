package math

import "math"

// Clamp limits v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CosInterp blends a and b with a cosine-eased factor. blend is normally
// in [0,1]; negative blend factors ease symmetrically because cosine is
// even.
func CosInterp(a, b, blend float32) float32 {
	theta := float64(blend) * math.Pi
	f := float32(1-math.Cos(theta)) / 2
	return a*(1-f) + b*f
}

// Barycentric interpolates the Y values of triangle (p1, p2, p3) at the
// XZ-plane position pos.
func Barycentric(p1, p2, p3 Vec3, pos Vec2) float32 {
	det := (p2.Z-p3.Z)*(p1.X-p3.X) + (p3.X-p2.X)*(p1.Z-p3.Z)
	l1 := ((p2.Z-p3.Z)*(pos.X-p3.X) + (p3.X-p2.X)*(pos.Y-p3.Z)) / det
	l2 := ((p3.Z-p1.Z)*(pos.X-p3.X) + (p1.X-p3.X)*(pos.Y-p3.Z)) / det
	l3 := 1 - l1 - l2
	return l1*p1.Y + l2*p2.Y + l3*p3.Y
}
