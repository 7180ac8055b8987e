package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VoidMesh/terragen/internal/terrain"
)

func TestRenderCoverage(t *testing.T) {
	t.Run("no bands", func(t *testing.T) {
		assert.Equal(t, "No bands", renderCoverage(nil, 100))
	})

	t.Run("bar per band", func(t *testing.T) {
		out := renderCoverage([]terrain.BandCoverage{
			{Name: "water", Color: "#1e90ff", Cells: 25},
			{Name: "grass", Color: "#228b22", Cells: 75},
		}, 100)

		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], "water")
		assert.Contains(t, lines[0], "25.0%")
		assert.Contains(t, lines[1], "75.0%")
	})
}

func TestStatsViewWithoutResult(t *testing.T) {
	m := NewStatsModel()
	assert.Contains(t, m.View(), "Nothing generated yet")
}
