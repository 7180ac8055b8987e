// Package terrain ties the height field, mesh and texture stages together and
// keeps a store of generated terrains that can be rendered again on demand.
package terrain

import (
	"math"

	"github.com/VoidMesh/terragen/internal/heightfield"
	"github.com/VoidMesh/terragen/internal/mesh"
	"github.com/VoidMesh/terragen/internal/noise"
	"github.com/VoidMesh/terragen/internal/texture"
	"github.com/VoidMesh/terragen/internal/validation"
)

const (
	MinDimension     = 8
	MaxDimension     = 512
	DefaultDimension = 100

	MinCellSize     = 0.1
	DefaultCellSize = 1.0

	DefaultHeightMultiplier = 10.0

	DefaultTextureResolution = 256
	MaxTextureResolution     = 4096

	MaxOctaves = 8
)

// Settings is everything needed to generate one terrain.
type Settings struct {
	Name              string             `json:"name,omitempty" yaml:"name,omitempty"`
	Width             int                `json:"width" yaml:"width"`
	Length            int                `json:"length" yaml:"length"`
	CellSize          float64            `json:"cell_size" yaml:"cell_size"`
	HeightMultiplier  float64            `json:"height_multiplier" yaml:"height_multiplier"`
	Curve             []mesh.Keyframe    `json:"curve,omitempty" yaml:"curve,omitempty"`
	Noise             heightfield.Config `json:"noise" yaml:"noise"`
	Bands             []texture.Band     `json:"bands" yaml:"bands"`
	TextureResolution int                `json:"texture_resolution" yaml:"texture_resolution"`
}

// DefaultSettings returns a 100x100 terrain with the stock noise and palette.
func DefaultSettings() Settings {
	return Settings{
		Width:             DefaultDimension,
		Length:            DefaultDimension,
		CellSize:          DefaultCellSize,
		HeightMultiplier:  DefaultHeightMultiplier,
		Noise:             heightfield.DefaultConfig(),
		Bands:             texture.DefaultBands(),
		TextureResolution: DefaultTextureResolution,
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	out := s
	if s.Curve != nil {
		out.Curve = append([]mesh.Keyframe(nil), s.Curve...)
	}
	if s.Bands != nil {
		out.Bands = append([]texture.Band(nil), s.Bands...)
	}
	return out
}

// Validate reports the first setting outside its accepted range.
func (s Settings) Validate() error {
	if s.Width < MinDimension || s.Width > MaxDimension {
		return validation.Errorf("width", "must be between %d and %d, got %d", MinDimension, MaxDimension, s.Width)
	}
	if s.Length < MinDimension || s.Length > MaxDimension {
		return validation.Errorf("length", "must be between %d and %d, got %d", MinDimension, MaxDimension, s.Length)
	}
	if !(s.CellSize >= MinCellSize) || math.IsInf(s.CellSize, 0) {
		return validation.Errorf("cell_size", "must be a finite value of at least %g, got %g", MinCellSize, s.CellSize)
	}
	if !(s.HeightMultiplier >= 0) || math.IsInf(s.HeightMultiplier, 0) {
		return validation.Errorf("height_multiplier", "must be a finite non-negative value, got %g", s.HeightMultiplier)
	}
	if s.TextureResolution < 1 || s.TextureResolution > MaxTextureResolution {
		return validation.Errorf("texture_resolution", "must be between 1 and %d, got %d", MaxTextureResolution, s.TextureResolution)
	}
	if err := validateNoise(s.Noise); err != nil {
		return err
	}
	if err := texture.ValidateBands(s.Bands); err != nil {
		return err
	}
	if _, err := mesh.CurveFromKeyframes(s.Curve); err != nil {
		return err
	}
	return nil
}

func validateNoise(cfg heightfield.Config) error {
	if cfg.Octaves < 1 || cfg.Octaves > MaxOctaves {
		return validation.Errorf("noise.octaves", "must be between 1 and %d, got %d", MaxOctaves, cfg.Octaves)
	}
	if !(cfg.Lacunarity >= 1) || math.IsInf(cfg.Lacunarity, 0) {
		return validation.Errorf("noise.lacunarity", "must be a finite value of at least 1, got %g", cfg.Lacunarity)
	}
	if !(cfg.Persistence >= 0 && cfg.Persistence <= 1) {
		return validation.Errorf("noise.persistence", "must be between 0 and 1, got %g", cfg.Persistence)
	}
	if math.IsNaN(cfg.BaseScale) || math.IsInf(cfg.BaseScale, 0) {
		return validation.Errorf("noise.base_scale", "must be finite, got %g", cfg.BaseScale)
	}
	if _, err := noise.ParseAlgorithm(string(cfg.Algorithm)); err != nil {
		return err
	}
	return nil
}
