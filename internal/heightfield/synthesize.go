package heightfield

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/VoidMesh/terragen/internal/noise"
	"github.com/VoidMesh/terragen/internal/validation"
)

// OctaveOffset is the sampling offset of a single octave.
type OctaveOffset struct {
	X float64
	Y float64
}

// ResolveSeed returns the seed a synthesis call will use. With
// UseRandomSeed a fresh seed is drawn from the process-wide source.
func ResolveSeed(cfg *Config) int64 {
	if cfg.UseRandomSeed {
		return rand.Int63()
	}
	return cfg.Seed
}

// OctaveOffsets draws one offset pair per octave from rng and shifts it by
// the configured global offset.
func OctaveOffsets(rng *rand.Rand, octaves int, offset Vec2) []OctaveOffset {
	offsets := make([]OctaveOffset, octaves)
	for i := range offsets {
		ox := float64(rng.Intn(2*offsetRange)-offsetRange) + offset.X
		oy := float64(rng.Intn(2*offsetRange)-offsetRange) + offset.Y
		offsets[i] = OctaveOffset{X: ox, Y: oy}
	}
	return offsets
}

// Synthesize builds a width x length height grid from multi-octave noise.
// The result is a pure function of the dimensions and cfg once the seed is
// resolved; the seeded generator lives only for the duration of the call.
func Synthesize(width, length int, cfg *Config) (*Grid, error) {
	if cfg == nil {
		return nil, validation.Errorf("noise", "noise config is required")
	}
	if cfg.Octaves < 1 {
		return nil, validation.Errorf("octaves", "must be at least 1, got %d", cfg.Octaves)
	}
	if !isFinite(cfg.Persistence) {
		return nil, validation.Errorf("persistence", "must be finite, got %g", cfg.Persistence)
	}
	if !isFinite(cfg.Lacunarity) {
		return nil, validation.Errorf("lacunarity", "must be finite, got %g", cfg.Lacunarity)
	}
	if !isFinite(cfg.Offset.X) || !isFinite(cfg.Offset.Y) {
		return nil, validation.Errorf("offset", "must be finite, got (%g, %g)", cfg.Offset.X, cfg.Offset.Y)
	}

	grid, err := NewGrid(width, length)
	if err != nil {
		return nil, err
	}

	seed := ResolveSeed(cfg)
	source, err := noise.New(cfg.Algorithm, seed)
	if err != nil {
		return nil, fmt.Errorf("create noise source: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	offsets := OctaveOffsets(rng, cfg.Octaves, cfg.Offset)
	scale := EffectiveScale(cfg.BaseScale)

	minHeight := math.MaxFloat64
	maxHeight := -math.MaxFloat64

	for z := 0; z < length; z++ {
		for x := 0; x < width; x++ {
			h := sampleOctaves(source, offsets, float64(x), float64(z), scale, cfg.Persistence, cfg.Lacunarity)

			if h > maxHeight {
				maxHeight = h
			}
			if h < minHeight {
				minHeight = h
			}

			grid.Set(x, z, h)
		}
	}

	grid.Seed = seed
	grid.Min = minHeight
	grid.Max = maxHeight

	if cfg.Normalize {
		normalize(grid.Values, minHeight, maxHeight)
		grid.Normalized = true
	}

	return grid, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sampleOctaves(source noise.GeneratorInterface, offsets []OctaveOffset, x, z, scale, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	height := 0.0

	for _, off := range offsets {
		sampleX := (x + off.X) / scale * frequency
		sampleZ := (z + off.Y) / scale * frequency

		// primitives are native [0,1]; shift to [-1,1]
		value := source.GetNoise(sampleX, sampleZ)*2 - 1
		height += value * amplitude

		amplitude *= persistence
		frequency *= lacunarity
	}

	return height
}

// normalize rescales values so lo maps to 0 and hi to 1. A flat field maps
// to 0 everywhere.
func normalize(values []float64, lo, hi float64) {
	span := hi - lo
	for i, v := range values {
		values[i] = inverseLerp(lo, span, v)
	}
}

func inverseLerp(lo, span, v float64) float64 {
	if span == 0 {
		return 0
	}
	t := (v - lo) / span
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
