// Package texture turns height grids into color images using ordered height
// bands.
package texture

import (
	"github.com/VoidMesh/terragen/internal/validation"
)

// Band assigns Color to every height at or below Threshold that no earlier
// band has claimed.
type Band struct {
	Name      string  `json:"name" yaml:"name"`
	Color     Color   `json:"color" yaml:"color"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
}

// DefaultBands returns the stock palette in ascending threshold order.
func DefaultBands() []Band {
	return []Band{
		{Name: "water", Color: MustParseHex("#1E90FF"), Threshold: 0.35},
		{Name: "sand", Color: MustParseHex("#FFD700"), Threshold: 0.45},
		{Name: "grass", Color: MustParseHex("#7CFC00"), Threshold: 0.6},
		{Name: "dirt", Color: MustParseHex("#8B4513"), Threshold: 0.75},
		{Name: "stone", Color: MustParseHex("#708090"), Threshold: 0.9},
		{Name: "snow", Color: MustParseHex("#FFFAFA"), Threshold: 1.0},
	}
}

// ValidateBands rejects an empty band list.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return validation.Errorf("bands", "at least one color band is required")
	}
	return nil
}

// BandIndex returns the index of the first band whose threshold is at or
// above height, or the last index when none is.
func BandIndex(bands []Band, height float64) int {
	for i := range bands {
		if bands[i].Threshold >= height {
			return i
		}
	}
	return len(bands) - 1
}

// Lookup returns the color for height. bands must not be empty.
func Lookup(bands []Band, height float64) Color {
	return bands[BandIndex(bands, height)].Color
}
