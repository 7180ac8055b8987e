package heightfield

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terragen/internal/noise"
	"github.com/VoidMesh/terragen/internal/validation"
)

func TestSynthesize_Validation(t *testing.T) {
	valid := DefaultConfig()
	zeroOctaves := DefaultConfig()
	zeroOctaves.Octaves = 0
	badAlgorithm := DefaultConfig()
	badAlgorithm.Algorithm = "cellular"
	nanPersistence := DefaultConfig()
	nanPersistence.Persistence = math.NaN()
	infPersistence := DefaultConfig()
	infPersistence.Persistence = math.Inf(1)
	nanLacunarity := DefaultConfig()
	nanLacunarity.Lacunarity = math.NaN()
	infOffset := DefaultConfig()
	infOffset.Offset = Vec2{X: math.Inf(-1)}
	nanOffset := DefaultConfig()
	nanOffset.Offset = Vec2{Y: math.NaN()}

	tests := []struct {
		name   string
		width  int
		length int
		cfg    *Config
		field  string
	}{
		{name: "nil config", width: 8, length: 8, cfg: nil, field: "noise"},
		{name: "width below minimum", width: 1, length: 8, cfg: &valid, field: "width"},
		{name: "length below minimum", width: 8, length: 0, cfg: &valid, field: "length"},
		{name: "negative width", width: -4, length: 8, cfg: &valid, field: "width"},
		{name: "zero octaves", width: 8, length: 8, cfg: &zeroOctaves, field: "octaves"},
		{name: "unknown algorithm", width: 8, length: 8, cfg: &badAlgorithm, field: "algorithm"},
		{name: "NaN persistence", width: 8, length: 8, cfg: &nanPersistence, field: "persistence"},
		{name: "infinite persistence", width: 8, length: 8, cfg: &infPersistence, field: "persistence"},
		{name: "NaN lacunarity", width: 8, length: 8, cfg: &nanLacunarity, field: "lacunarity"},
		{name: "infinite offset", width: 8, length: 8, cfg: &infOffset, field: "offset"},
		{name: "NaN offset", width: 8, length: 8, cfg: &nanOffset, field: "offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Synthesize(tt.width, tt.length, tt.cfg)
			require.Error(t, err)
			assert.Nil(t, grid, "no partial result on failure")
			assert.True(t, validation.IsConfigError(err))

			var cfgErr *validation.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	for _, algorithm := range noise.Algorithms {
		t.Run(string(algorithm), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Algorithm = algorithm
			cfg.Offset = Vec2{X: 12.5, Y: -3}

			first, err := Synthesize(32, 24, &cfg)
			require.NoError(t, err)
			second, err := Synthesize(32, 24, &cfg)
			require.NoError(t, err)

			assert.Equal(t, first.Values, second.Values)
			assert.Equal(t, first.Min, second.Min)
			assert.Equal(t, first.Max, second.Max)
			assert.Equal(t, cfg.Seed, first.Seed)
		})
	}
}

func TestSynthesize_SeedChangesOutput(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	b.Seed = a.Seed + 1

	first, err := Synthesize(16, 16, &a)
	require.NoError(t, err)
	second, err := Synthesize(16, 16, &b)
	require.NoError(t, err)

	assert.NotEqual(t, first.Values, second.Values)
}

func TestSynthesize_RandomSeedIsReplayable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseRandomSeed = true

	grid, err := Synthesize(20, 20, &cfg)
	require.NoError(t, err)

	replay := cfg
	replay.UseRandomSeed = false
	replay.Seed = grid.Seed

	again, err := Synthesize(20, 20, &replay)
	require.NoError(t, err)
	assert.Equal(t, grid.Values, again.Values)
}

func TestSynthesize_Normalization(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "defaults", mutate: func(cfg *Config) {}},
		{name: "single octave", mutate: func(cfg *Config) { cfg.Octaves = 1 }},
		{name: "eight octaves high lacunarity", mutate: func(cfg *Config) { cfg.Octaves = 8; cfg.Lacunarity = 3.5 }},
		{name: "opensimplex", mutate: func(cfg *Config) { cfg.Algorithm = noise.OpenSimplex }},
		{name: "large offset", mutate: func(cfg *Config) { cfg.Offset = Vec2{X: 5000, Y: -7000} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			grid, err := Synthesize(40, 30, &cfg)
			require.NoError(t, err)
			require.True(t, grid.Normalized)

			lo, hi := grid.Range()
			assert.Equal(t, 0.0, lo)
			assert.Equal(t, 1.0, hi)
			assert.Less(t, grid.Min, grid.Max, "raw range should not collapse")
		})
	}
}

func TestSynthesize_RawRangeTracked(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalize = false

	grid, err := Synthesize(25, 25, &cfg)
	require.NoError(t, err)
	assert.False(t, grid.Normalized)

	lo, hi := grid.Range()
	assert.Equal(t, grid.Min, lo)
	assert.Equal(t, grid.Max, hi)

	// the sum of a geometric series bounds the raw octave sum
	bound := 0.0
	amplitude := 1.0
	for i := 0; i < cfg.Octaves; i++ {
		bound += amplitude
		amplitude *= cfg.Persistence
	}
	assert.GreaterOrEqual(t, lo, -bound)
	assert.LessOrEqual(t, hi, bound)
}

func TestSynthesize_MatchesOctaveFormula(t *testing.T) {
	cfg := Config{
		Seed:        99,
		Offset:      Vec2{X: 3, Y: 4},
		BaseScale:   10,
		Octaves:     3,
		Lacunarity:  2,
		Persistence: 0.5,
		Algorithm:   noise.Perlin,
	}

	grid, err := Synthesize(6, 5, &cfg)
	require.NoError(t, err)

	source, err := noise.New(cfg.Algorithm, cfg.Seed)
	require.NoError(t, err)
	offsets := OctaveOffsets(rand.New(rand.NewSource(cfg.Seed)), cfg.Octaves, cfg.Offset)

	for z := 0; z < 5; z++ {
		for x := 0; x < 6; x++ {
			want := 0.0
			amplitude, frequency := 1.0, 1.0
			for _, off := range offsets {
				sx := (float64(x) + off.X) / cfg.BaseScale * frequency
				sz := (float64(z) + off.Y) / cfg.BaseScale * frequency
				want += (source.GetNoise(sx, sz)*2 - 1) * amplitude
				amplitude *= cfg.Persistence
				frequency *= cfg.Lacunarity
			}
			assert.Equal(t, want, grid.At(x, z), "cell (%d,%d)", x, z)
		}
	}
}

func TestSynthesize_DegenerateBaseScale(t *testing.T) {
	for _, scale := range []float64{0, -5, 1e-9, math.NaN(), math.Inf(-1)} {
		cfg := DefaultConfig()
		cfg.BaseScale = scale

		grid, err := Synthesize(10, 10, &cfg)
		require.NoError(t, err, "base scale %v must be floored, not rejected", scale)
		for _, v := range grid.Values {
			assert.False(t, math.IsNaN(v))
			assert.False(t, math.IsInf(v, 0))
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		assert.LessOrEqual(t, grid.Min, grid.Max)

		floored := cfg
		floored.BaseScale = MinBaseScale
		want, err := Synthesize(10, 10, &floored)
		require.NoError(t, err)
		assert.Equal(t, want.Values, grid.Values)
	}
}

func TestOctaveOffsets(t *testing.T) {
	offset := Vec2{X: 250, Y: -40}
	offsets := OctaveOffsets(rand.New(rand.NewSource(5)), 8, offset)
	require.Len(t, offsets, 8)

	for _, off := range offsets {
		assert.GreaterOrEqual(t, off.X, -offsetRange+offset.X)
		assert.Less(t, off.X, offsetRange+offset.X)
		assert.GreaterOrEqual(t, off.Y, -offsetRange+offset.Y)
		assert.Less(t, off.Y, offsetRange+offset.Y)
		assert.Equal(t, math.Trunc(off.X-offset.X), off.X-offset.X, "offset draws are integers")
	}

	again := OctaveOffsets(rand.New(rand.NewSource(5)), 8, offset)
	assert.Equal(t, offsets, again)
}

func TestNormalize_FlatField(t *testing.T) {
	values := []float64{0.25, 0.25, 0.25, 0.25}
	normalize(values, 0.25, 0.25)
	assert.Equal(t, []float64{0, 0, 0, 0}, values)
}

func TestNormalize_Endpoints(t *testing.T) {
	values := []float64{-1.5, 0, 0.75, 2}
	normalize(values, -1.5, 2)
	assert.Equal(t, 0.0, values[0])
	assert.Equal(t, 1.0, values[3])
	assert.InDelta(t, 1.5/3.5, values[1], 1e-12)
	assert.InDelta(t, 2.25/3.5, values[2], 1e-12)
}

func TestSynthesize_Scenario(t *testing.T) {
	cfg := Config{
		Seed:        1,
		BaseScale:   20,
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2,
		Normalize:   true,
	}

	grid, err := Synthesize(4, 4, &cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, grid.Width)
	assert.Equal(t, 4, grid.Length)
	assert.Len(t, grid.Values, 16)
	for _, v := range grid.Values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
