package terrain

import (
	stdmath "math"

	"github.com/alsid/clap/internal/engine/noise"
	"github.com/alsid/clap/pkg/math"
)

// synthesizer holds the precomputed seed-height lattice that fractal
// sampling interpolates over. It is built once per generation and
// discarded with the builder; only the final height grid survives.
type synthesizer struct {
	seeds   []float32 // raw per-coordinate draws, [x*res+z]
	res     int
	originY float32
}

func newSynthesizer(seed int64, res int, originY float32) *synthesizer {
	s := &synthesizer{
		seeds:   make([]float32, res*res),
		res:     res,
		originY: originY,
	}
	for x := 0; x < res; x++ {
		for z := 0; z < res; z++ {
			s.seeds[x*res+z] = noise.Signed(seed, int32(x), int32(z))
		}
	}
	return s
}

// wrapped returns the lattice value with both coordinates wrapped
// toroidally into [0, res).
func (s *synthesizer) wrapped(x, z int) float32 {
	x %= s.res
	if x < 0 {
		x += s.res
	}
	z %= s.res
	if z < 0 {
		z += s.res
	}
	return s.seeds[x*s.res+z]
}

// averaged applies a 3x3 smoothing kernel to the lattice: corners
// weigh 1/16 each, sides 1/8, the cell itself 1/4.
func (s *synthesizer) averaged(x, z int) float32 {
	corners := s.wrapped(x-1, z-1) +
		s.wrapped(x+1, z-1) +
		s.wrapped(x-1, z+1) +
		s.wrapped(x+1, z+1)
	sides := s.wrapped(x-1, z) +
		s.wrapped(x+1, z) +
		s.wrapped(x, z-1) +
		s.wrapped(x, z+1)
	return corners/16 + sides/8 + s.wrapped(x, z)/4
}

// interp samples the smoothed lattice at a fractional coordinate with
// cosine-eased bilinear blending.
func (s *synthesizer) interp(x, z float32) float32 {
	ix := int(stdmath.Floor(float64(x)))
	iz := int(stdmath.Floor(float64(z)))
	fracX := x - float32(ix)
	fracZ := z - float32(iz)

	v1 := s.averaged(ix, iz)
	v2 := s.averaged(ix+1, iz)
	v3 := s.averaged(ix, iz+1)
	v4 := s.averaged(ix+1, iz+1)

	i1 := math.CosInterp(v1, v2, fracX)
	i2 := math.CosInterp(v3, v4, fracX)
	return math.CosInterp(i1, i2, fracZ)
}

// Sample returns the multi-octave fractal height at (x, z). Octave i
// contributes at frequency 2^i/2^(octaves-1) with amplitude
// Roughness^i * amplitude. Pure in (lattice, x, z, octaves, amplitude).
func (s *synthesizer) Sample(x, z float32, octaves int, amplitude float32) float32 {
	d := float32(stdmath.Pow(2, float64(octaves-1)))
	var total float32
	for i := 0; i < octaves; i++ {
		freq := float32(stdmath.Pow(2, float64(i))) / d
		amp := float32(stdmath.Pow(Roughness, float64(i))) * amplitude
		total += s.interp(x*freq, z*freq) * amp
	}
	return s.originY + total
}
