// Package noise provides stateless, seed-keyed pseudo-random values for
// integer grid coordinates. Every function is a pure mapping of its
// arguments, so callers may sample in any order, from any goroutine,
// and always observe the same values.
package noise

import "math"

// Large odd constants decorrelate the axes before avalanching.
const (
	primeX = 0x9e3779b1
	primeZ = 0x85ebca6b
)

// mix32 avalanches a 32-bit value (murmur3 finalizer constants).
func mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Hash returns a well-distributed 32-bit hash of a seed and a 2D integer
// coordinate.
func Hash(seed int64, x, z int32) uint32 {
	h := uint32(seed) ^ mix32(uint32(seed>>32))
	h ^= uint32(x) * primeX
	h ^= uint32(z) * primeZ
	return mix32(h)
}

// Signed returns a deterministic value in [-1, 1] for the coordinate.
func Signed(seed int64, x, z int32) float32 {
	return float32(float64(Hash(seed, x, z))/float64(math.MaxUint32)*2 - 1)
}
