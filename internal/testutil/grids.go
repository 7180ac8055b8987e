package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terragen/internal/heightfield"
)

// GridFromFunc builds a width x length grid whose cell (x, z) holds f(x, z).
func GridFromFunc(t *testing.T, width, length int, f func(x, z int) float64) *heightfield.Grid {
	t.Helper()

	grid, err := heightfield.NewGrid(width, length)
	require.NoError(t, err)

	for z := 0; z < length; z++ {
		for x := 0; x < width; x++ {
			grid.Set(x, z, f(x, z))
		}
	}
	grid.Min, grid.Max = grid.Range()
	return grid
}

// FlatGrid builds a grid with every cell set to value.
func FlatGrid(t *testing.T, width, length int, value float64) *heightfield.Grid {
	t.Helper()

	return GridFromFunc(t, width, length, func(int, int) float64 { return value })
}
