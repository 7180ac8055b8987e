// Package heightfield synthesizes height grids from layered coherent noise.
package heightfield

import (
	"github.com/VoidMesh/terragen/internal/noise"
)

const (
	// MinBaseScale is the floor applied to Config.BaseScale before sampling.
	MinBaseScale = 0.001

	// MinDimension is the smallest accepted grid width or length.
	MinDimension = 2

	// offsetRange bounds the per-octave random offsets to [-offsetRange, offsetRange).
	offsetRange = 100000
)

// Vec2 is a plain 2D offset.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Config controls height field synthesis.
type Config struct {
	Seed          int64           `json:"seed" yaml:"seed"`
	UseRandomSeed bool            `json:"use_random_seed" yaml:"use_random_seed"`
	Offset        Vec2            `json:"offset" yaml:"offset"`
	BaseScale     float64         `json:"base_scale" yaml:"base_scale"`
	Octaves       int             `json:"octaves" yaml:"octaves"`
	Lacunarity    float64         `json:"lacunarity" yaml:"lacunarity"`
	Persistence   float64         `json:"persistence" yaml:"persistence"`
	Normalize     bool            `json:"normalize" yaml:"normalize"`
	Algorithm     noise.Algorithm `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
}

// DefaultConfig returns the stock noise settings.
func DefaultConfig() Config {
	return Config{
		Seed:        12345,
		BaseScale:   20,
		Octaves:     4,
		Lacunarity:  2,
		Persistence: 0.5,
		Normalize:   true,
		Algorithm:   noise.Perlin,
	}
}

// EffectiveScale returns the base scale actually used for sampling.
func EffectiveScale(baseScale float64) float64 {
	// negated so NaN is floored too
	if !(baseScale >= MinBaseScale) {
		return MinBaseScale
	}
	return baseScale
}
