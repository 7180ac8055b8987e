package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/VoidMesh/terragen/internal/validation"
)

// Algorithm names a coherent noise primitive.
type Algorithm string

const (
	Perlin      Algorithm = "perlin"
	OpenSimplex Algorithm = "opensimplex"
)

// Algorithms lists every supported primitive in preference order.
var Algorithms = []Algorithm{Perlin, OpenSimplex}

// GeneratorInterface defines the interface for coherent noise sampling.
// Implementations return values in [0, 1] and are safe for concurrent reads.
type GeneratorInterface interface {
	GetNoise(x, y float64) float64
	GetSeed() int64
}

// PerlinGenerator implements GeneratorInterface using Perlin noise.
type PerlinGenerator struct {
	noise *perlin.Perlin
	seed  int64
}

// NewPerlinGenerator creates a Perlin generator with the given seed.
func NewPerlinGenerator(seed int64) *PerlinGenerator {
	// alpha=2, beta=2 as before; a single octave since layering happens in
	// the height field synthesizer
	return &PerlinGenerator{
		noise: perlin.NewPerlin(2, 2, 1, seed),
		seed:  seed,
	}
}

// GetNoise returns a noise value between 0 and 1 for the given coordinates.
func (g *PerlinGenerator) GetNoise(x, y float64) float64 {
	return clamp01((g.noise.Noise2D(x, y) + 1) / 2)
}

// GetSeed returns the seed the permutation table was built from.
func (g *PerlinGenerator) GetSeed() int64 {
	return g.seed
}

// OpenSimplexGenerator implements GeneratorInterface using normalized
// OpenSimplex noise.
type OpenSimplexGenerator struct {
	noise opensimplex.Noise
	seed  int64
}

// NewOpenSimplexGenerator creates an OpenSimplex generator with the given seed.
func NewOpenSimplexGenerator(seed int64) *OpenSimplexGenerator {
	return &OpenSimplexGenerator{
		noise: opensimplex.NewNormalized(seed),
		seed:  seed,
	}
}

// GetNoise returns a noise value between 0 and 1 for the given coordinates.
func (g *OpenSimplexGenerator) GetNoise(x, y float64) float64 {
	return clamp01(g.noise.Eval2(x, y))
}

// GetSeed returns the seed the generator was built from.
func (g *OpenSimplexGenerator) GetSeed() int64 {
	return g.seed
}

// New creates a generator for the named algorithm. An empty name selects Perlin.
func New(algorithm Algorithm, seed int64) (GeneratorInterface, error) {
	switch algorithm {
	case "", Perlin:
		return NewPerlinGenerator(seed), nil
	case OpenSimplex:
		return NewOpenSimplexGenerator(seed), nil
	default:
		return nil, validation.Errorf("algorithm", "unknown noise algorithm %q", algorithm)
	}
}

// ParseAlgorithm converts a user supplied name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(Perlin):
		return Perlin, nil
	case string(OpenSimplex), "simplex":
		return OpenSimplex, nil
	default:
		return "", fmt.Errorf("parse algorithm: %w", validation.Errorf("algorithm", "unknown noise algorithm %q", name))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
