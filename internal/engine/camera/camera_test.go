package camera

import (
	"testing"

	"github.com/alsid/clap/internal/engine/terrain"
)

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected zoom-in to clamp at %v, got %v", c.MinDistance, c.Distance)
	}

	for i := 0; i < 200; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("expected zoom-out to clamp at %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("expected pitch clamped at %v, got %v", c.MaxPitch, c.RotationX)
	}

	c.HandleDrag(0, -10000)
	if c.RotationX != c.MinPitch {
		t.Errorf("expected pitch clamped at %v, got %v", c.MinPitch, c.RotationX)
	}
}

func TestFitToTerrain(t *testing.T) {
	tr, _, err := terrain.Generate(terrain.Params{
		Side:       64,
		Resolution: 65,
		Seed:       5,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	c := NewOrbitCamera()
	c.FitToTerrain(tr)

	if c.CenterX != 32 || c.CenterZ != 32 {
		t.Errorf("expected center over (32,32), got (%v,%v)", c.CenterX, c.CenterZ)
	}
	if want := tr.HeightAt(32, 32); c.CenterY != want {
		t.Errorf("expected center height %v, got %v", want, c.CenterY)
	}
	if c.Distance <= tr.Side() {
		t.Errorf("expected distance to clear the terrain extent, got %v", c.Distance)
	}

	// Camera must sit above and behind the center, looking down.
	pos := c.Position()
	if pos.Y <= c.CenterY {
		t.Errorf("expected camera above center, got y=%v center=%v", pos.Y, c.CenterY)
	}
}
