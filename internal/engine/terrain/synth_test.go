package terrain

import "testing"

func TestSynthesizerWrapping(t *testing.T) {
	s := newSynthesizer(11, 32, 0)

	cases := [][4]int{
		{-1, 0, 31, 0},
		{32, 5, 0, 5},
		{7, -3, 7, 29},
		{-33, 40, 31, 8},
	}
	for _, c := range cases {
		if got, want := s.wrapped(c[0], c[1]), s.wrapped(c[2], c[3]); got != want {
			t.Errorf("wrapped(%d,%d) = %v, wrapped(%d,%d) = %v; want equal",
				c[0], c[1], got, c[2], c[3], want)
		}
	}
}

func TestSynthesizerAveragedKernel(t *testing.T) {
	s := newSynthesizer(11, 32, 0)

	// Recompute one sample by hand from the kernel weights.
	x, z := 10, 20
	corners := s.wrapped(x-1, z-1) + s.wrapped(x+1, z-1) +
		s.wrapped(x-1, z+1) + s.wrapped(x+1, z+1)
	sides := s.wrapped(x-1, z) + s.wrapped(x+1, z) +
		s.wrapped(x, z-1) + s.wrapped(x, z+1)
	want := corners/16 + sides/8 + s.wrapped(x, z)/4

	if got := s.averaged(x, z); got != want {
		t.Errorf("averaged(%d,%d) = %v, want %v", x, z, got, want)
	}
}

func TestSynthesizerInterpAtLatticePoints(t *testing.T) {
	s := newSynthesizer(11, 32, 0)

	for _, p := range [][2]int{{0, 0}, {5, 9}, {31, 31}} {
		want := s.averaged(p[0], p[1])
		got := s.interp(float32(p[0]), float32(p[1]))
		if absDiff(got, want) > 1e-6 {
			t.Errorf("interp(%d,%d) = %v, want averaged value %v", p[0], p[1], got, want)
		}
	}
}

func TestSampleLinearInAmplitude(t *testing.T) {
	s := newSynthesizer(11, 32, 0)

	base := s.Sample(3.7, 8.2, 4, 1)
	doubled := s.Sample(3.7, 8.2, 4, 2)
	if absDiff(doubled, 2*base) > 1e-4 {
		t.Errorf("Sample with doubled amplitude = %v, want %v", doubled, 2*base)
	}

	// Zero amplitude collapses to the origin height.
	s2 := newSynthesizer(11, 32, 7)
	if got := s2.Sample(3.7, 8.2, 4, 0); got != 7 {
		t.Errorf("Sample with zero amplitude = %v, want origin height 7", got)
	}
}

func TestSampleDeterministic(t *testing.T) {
	a := newSynthesizer(99, 32, 0)
	b := newSynthesizer(99, 32, 0)

	for _, p := range [][2]float32{{0, 0}, {1.5, 2.25}, {30.9, 31.1}} {
		if ga, gb := a.Sample(p[0], p[1], 5, 3), b.Sample(p[0], p[1], 5, 3); ga != gb {
			t.Errorf("Sample(%v,%v) differs across identical synthesizers: %v != %v",
				p[0], p[1], ga, gb)
		}
	}
}
