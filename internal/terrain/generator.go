package terrain

import (
	"context"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VoidMesh/terragen/internal/heightfield"
	"github.com/VoidMesh/terragen/internal/mesh"
	"github.com/VoidMesh/terragen/internal/texture"
)

// Pipeline stage names, used in logs and metrics.
const (
	StageHeights = "heights"
	StageMesh    = "mesh"
	StageTexture = "texture"
)

// StageObserver is told how long each pipeline stage took.
type StageObserver func(stage string, duration time.Duration)

// StageDurations records the wall time of each stage of one generation.
type StageDurations struct {
	Heights time.Duration `json:"heights"`
	Mesh    time.Duration `json:"mesh"`
	Texture time.Duration `json:"texture"`
	Total   time.Duration `json:"total"`
}

// Result is one fully generated terrain. Settings carries the resolved seed
// with UseRandomSeed cleared, so generating it again reproduces Result.
type Result struct {
	Settings  Settings
	Seed      int64
	Heights   *heightfield.Grid
	Mesh      *mesh.Buffers
	Texture   *image.RGBA
	Durations StageDurations
}

// Generator runs the height, mesh and texture stages for a Settings value.
// It holds no generation state and is safe for concurrent use.
type Generator struct {
	logger   LoggerInterface
	observer StageObserver
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithStageObserver registers fn to receive stage timings.
func WithStageObserver(fn StageObserver) GeneratorOption {
	return func(g *Generator) {
		g.observer = fn
	}
}

// NewGenerator creates a generator with dependency injection.
func NewGenerator(logger LoggerInterface, opts ...GeneratorOption) *Generator {
	g := &Generator{
		logger: logger.With("component", "terrain-generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGeneratorWithDefaultLogger creates a generator with the default logger.
func NewGeneratorWithDefaultLogger(opts ...GeneratorOption) *Generator {
	return NewGenerator(NewDefaultLoggerWrapper(), opts...)
}

// Generate validates settings and builds the terrain. Mesh and texture are
// built concurrently once the height field exists; if either fails no result
// is returned.
func (g *Generator) Generate(ctx context.Context, settings Settings) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		g.logger.Debug("Rejected terrain settings", "error", err)
		return nil, err
	}

	curve, err := mesh.CurveFromKeyframes(settings.Curve)
	if err != nil {
		return nil, err
	}

	resolved := settings.Clone()
	resolved.Noise.Seed = heightfield.ResolveSeed(&settings.Noise)
	resolved.Noise.UseRandomSeed = false

	logger := g.logger.With("seed", resolved.Noise.Seed, "width", resolved.Width, "length", resolved.Length)
	logger.Debug("Generating terrain", "octaves", resolved.Noise.Octaves, "algorithm", resolved.Noise.Algorithm)

	start := time.Now()
	result := &Result{
		Settings: resolved,
		Seed:     resolved.Noise.Seed,
	}

	stageStart := time.Now()
	grid, err := heightfield.Synthesize(resolved.Width, resolved.Length, &resolved.Noise)
	if err != nil {
		logger.Error("Failed to synthesize height field", "error", err)
		return nil, fmt.Errorf("synthesize heights: %w", err)
	}
	result.Heights = grid
	result.Durations.Heights = time.Since(stageStart)
	g.observe(StageHeights, result.Durations.Heights)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		t := time.Now()
		buffers, err := mesh.Build(grid, resolved.HeightMultiplier, curve, resolved.CellSize)
		if err != nil {
			return fmt.Errorf("build mesh: %w", err)
		}
		result.Mesh = buffers
		result.Durations.Mesh = time.Since(t)
		return nil
	})

	eg.Go(func() error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		t := time.Now()
		img, err := texture.Colorize(grid, resolved.Bands, resolved.TextureResolution)
		if err != nil {
			return fmt.Errorf("colorize: %w", err)
		}
		result.Texture = img
		result.Durations.Texture = time.Since(t)
		return nil
	})

	if err := eg.Wait(); err != nil {
		logger.Error("Terrain generation failed", "error", err)
		return nil, err
	}
	g.observe(StageMesh, result.Durations.Mesh)
	g.observe(StageTexture, result.Durations.Texture)

	result.Durations.Total = time.Since(start)
	logger.Info("Terrain generated",
		"vertices", result.Mesh.VertexCount(),
		"triangles", result.Mesh.TriangleCount(),
		"duration", result.Durations.Total,
	)

	return result, nil
}

func (g *Generator) observe(stage string, d time.Duration) {
	if g.observer != nil {
		g.observer(stage, d)
	}
}

// BandCoverage is the number of grid cells a band colors.
type BandCoverage struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Cells int    `json:"cells"`
}

// Stats summarizes a Result for listings and API responses.
type Stats struct {
	Seed          int64          `json:"seed"`
	Width         int            `json:"width"`
	Length        int            `json:"length"`
	VertexCount   int            `json:"vertex_count"`
	TriangleCount int            `json:"triangle_count"`
	MinHeight     float64        `json:"min_height"`
	MaxHeight     float64        `json:"max_height"`
	BoundsMin     [3]float32     `json:"bounds_min"`
	BoundsMax     [3]float32     `json:"bounds_max"`
	Bands         []BandCoverage `json:"bands"`
	Durations     StageDurations `json:"durations"`
}

// Stats computes the summary of r. MinHeight and MaxHeight are the raw
// octave-sum extremes, before normalization.
func (r *Result) Stats() Stats {
	counts := texture.Distribution(r.Heights, r.Settings.Bands)
	bands := make([]BandCoverage, len(counts))
	for i, n := range counts {
		bands[i] = BandCoverage{
			Name:  r.Settings.Bands[i].Name,
			Color: r.Settings.Bands[i].Color.Hex(),
			Cells: n,
		}
	}

	return Stats{
		Seed:          r.Seed,
		Width:         r.Heights.Width,
		Length:        r.Heights.Length,
		VertexCount:   r.Mesh.VertexCount(),
		TriangleCount: r.Mesh.TriangleCount(),
		MinHeight:     r.Heights.Min,
		MaxHeight:     r.Heights.Max,
		BoundsMin:     r.Mesh.Bounds.Min,
		BoundsMax:     r.Mesh.Bounds.Max,
		Bands:         bands,
		Durations:     r.Durations,
	}
}
