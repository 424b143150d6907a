package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/alsid/clap/internal/engine/terrain"
)

// WriteHeightmapPNG writes the height grid as a 16-bit grayscale PNG,
// black at the lowest sample and white at the highest. A flat terrain
// renders mid-gray.
func WriteHeightmapPNG(path string, t *terrain.Terrain) error {
	res := t.Resolution()
	heights := t.HeightMap()

	lo, hi := heights[0], heights[0]
	for _, h := range heights {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	span := hi - lo

	img := image.NewGray16(image.Rect(0, 0, res, res))
	for x := 0; x < res; x++ {
		for z := 0; z < res; z++ {
			v := uint16(0x8000)
			if span > 0 {
				v = uint16((heights[x*res+z] - lo) / span * 0xffff)
			}
			img.SetGray16(x, z, color.Gray16{Y: v})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating heightmap file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding heightmap: %w", err)
	}
	return nil
}
