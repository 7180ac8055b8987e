package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/VoidMesh/terragen/internal/heightfield"
	"github.com/VoidMesh/terragen/internal/validation"
)

// Colorize renders a resolution x resolution image of grid, coloring each
// pixel by the first band that covers the height of its nearest lower grid
// cell.
func Colorize(grid *heightfield.Grid, bands []Band, resolution int) (*image.RGBA, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateBands(bands); err != nil {
		return nil, err
	}
	if resolution <= 0 {
		return nil, validation.Errorf("resolution", "must be positive, got %d", resolution)
	}

	img := image.NewRGBA(image.Rect(0, 0, resolution, resolution))

	// column lookups are identical for every row
	columns := make([]int, resolution)
	for px := range columns {
		columns[px] = sampleIndex(px, resolution, grid.Width)
	}

	for py := 0; py < resolution; py++ {
		gz := sampleIndex(py, resolution, grid.Length)
		for px := 0; px < resolution; px++ {
			height := grid.At(columns[px], gz)
			img.SetRGBA(px, py, color.RGBA(Lookup(bands, height)))
		}
	}

	return img, nil
}

// sampleIndex maps pixel p of resolution onto a cell of a size-long axis by
// truncating p/(resolution-1)*(size-1).
func sampleIndex(p, resolution, size int) int {
	if resolution == 1 {
		return 0
	}

	s := float64(p) / float64(resolution-1) * float64(size-1)
	i := int(math.Floor(s))
	if i < 0 {
		return 0
	}
	if i > size-1 {
		return size - 1
	}
	return i
}

// Distribution counts the grid cells that fall into each band.
func Distribution(grid *heightfield.Grid, bands []Band) []int {
	counts := make([]int, len(bands))
	if len(bands) == 0 {
		return counts
	}
	for _, h := range grid.Values {
		counts[BandIndex(bands, h)]++
	}
	return counts
}

// Heightmap renders grid as a 16-bit grayscale image, one pixel per cell.
// Values are rescaled by the grid's current range unless already normalized.
func Heightmap(grid *heightfield.Grid) (*image.Gray16, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	lo, span := 0.0, 1.0
	if !grid.Normalized {
		min, max := grid.Range()
		lo, span = min, max-min
	}

	img := image.NewGray16(image.Rect(0, 0, grid.Width, grid.Length))
	for z := 0; z < grid.Length; z++ {
		for x := 0; x < grid.Width; x++ {
			t := 0.0
			if span != 0 {
				t = (grid.At(x, z) - lo) / span
			}
			t = math.Max(0, math.Min(1, t))
			img.SetGray16(x, z, color.Gray16{Y: uint16(math.Round(t * 0xffff))})
		}
	}

	return img, nil
}
