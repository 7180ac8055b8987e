package heightfield

import (
	"math"

	"github.com/VoidMesh/terragen/internal/validation"
)

// Grid is a row-major height field. Values[z*Width+x] holds the height of
// cell (x, z).
type Grid struct {
	Width  int
	Length int
	Values []float64

	// Seed is the resolved seed the grid was synthesized from.
	Seed int64
	// Min and Max are the extremes of the raw octave sums, before any
	// normalization.
	Min float64
	Max float64

	Normalized bool
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, length int) (*Grid, error) {
	if width < MinDimension {
		return nil, validation.Errorf("width", "must be at least %d, got %d", MinDimension, width)
	}
	if length < MinDimension {
		return nil, validation.Errorf("length", "must be at least %d, got %d", MinDimension, length)
	}

	return &Grid{
		Width:  width,
		Length: length,
		Values: make([]float64, width*length),
	}, nil
}

// Index returns the flat index of cell (x, z).
func (g *Grid) Index(x, z int) int {
	return z*g.Width + x
}

// At returns the height of cell (x, z).
func (g *Grid) At(x, z int) float64 {
	return g.Values[g.Index(x, z)]
}

// Set stores the height of cell (x, z).
func (g *Grid) Set(x, z int, v float64) {
	g.Values[g.Index(x, z)] = v
}

// Range scans the current values and returns their minimum and maximum.
func (g *Grid) Range() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Validate checks that the grid is usable by the mesher and colorizer.
func (g *Grid) Validate() error {
	if g == nil {
		return validation.Errorf("heights", "height grid is required")
	}
	if g.Width < MinDimension || g.Length < MinDimension {
		return validation.Errorf("heights", "grid must be at least %dx%d, got %dx%d", MinDimension, MinDimension, g.Width, g.Length)
	}
	if len(g.Values) != g.Width*g.Length {
		return validation.Errorf("heights", "expected %d values, got %d", g.Width*g.Length, len(g.Values))
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := *g
	clone.Values = make([]float64, len(g.Values))
	copy(clone.Values, g.Values)
	return &clone
}
