package texture

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terragen/internal/heightfield"
	"github.com/VoidMesh/terragen/internal/testutil"
	"github.com/VoidMesh/terragen/internal/validation"
)

var (
	sand  = MustParseHex("#C2B280")
	grass = MustParseHex("#7CFC00")
	rock  = MustParseHex("#708090")
)

func biomeBands() []Band {
	return []Band{
		{Name: "sand", Color: sand, Threshold: 0.3},
		{Name: "grass", Color: grass, Threshold: 0.6},
		{Name: "rock", Color: rock, Threshold: 1.0},
	}
}

func TestColorize_Scenario(t *testing.T) {
	grid := testutil.FlatGrid(t, 2, 2, 0.1)
	grid.Set(1, 1, 0.5)

	img, err := Colorize(grid, biomeBands(), 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA(grass), img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA(sand), img.RGBAAt(0, 0))
}

func TestLookup(t *testing.T) {
	bands := biomeBands()

	tests := []struct {
		name   string
		height float64
		want   Color
	}{
		{name: "bottom", height: 0, want: sand},
		{name: "exactly on threshold", height: 0.3, want: sand},
		{name: "just above threshold", height: 0.3000001, want: grass},
		{name: "grass", height: 0.5, want: grass},
		{name: "top", height: 1, want: rock},
		{name: "above every threshold falls back to last", height: 1.7, want: rock},
		{name: "negative raw height", height: -0.8, want: sand},
		{name: "nan falls back to last", height: math.NaN(), want: rock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(bands, tt.height))
		})
	}
}

func TestLookup_FirstMatchWinsUnsorted(t *testing.T) {
	bands := []Band{
		{Name: "high", Color: rock, Threshold: 0.9},
		{Name: "low", Color: sand, Threshold: 0.2},
	}
	// 0.1 satisfies both; caller order decides
	assert.Equal(t, rock, Lookup(bands, 0.1))
}

func TestColorize_Fallback(t *testing.T) {
	grid := testutil.FlatGrid(t, 3, 3, 0.95)
	bands := []Band{
		{Name: "low", Color: sand, Threshold: 0.2},
		{Name: "mid", Color: grass, Threshold: 0.5},
	}

	img, err := Colorize(grid, bands, 5)
	require.NoError(t, err)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, color.RGBA(grass), img.RGBAAt(x, y))
		}
	}
}

func TestColorize_Coverage(t *testing.T) {
	cfg := heightfield.DefaultConfig()
	grid, err := heightfield.Synthesize(37, 23, &cfg)
	require.NoError(t, err)

	bands := DefaultBands()
	allowed := make(map[color.RGBA]bool)
	for _, b := range bands {
		allowed[color.RGBA(b.Color)] = true
	}

	for _, resolution := range []int{1, 2, 17, 64, 100} {
		img, err := Colorize(grid, bands, resolution)
		require.NoError(t, err)
		require.Equal(t, resolution, img.Bounds().Dx())
		require.Equal(t, resolution, img.Bounds().Dy())

		for y := 0; y < resolution; y++ {
			for x := 0; x < resolution; x++ {
				px := img.RGBAAt(x, y)
				assert.True(t, allowed[px], "pixel (%d,%d) = %v is not a band color", x, y, px)
			}
		}
	}
}

func TestColorize_NearestLowerSampling(t *testing.T) {
	// each cell gets its own band so pixel colors reveal the sampled cell
	grid := testutil.GridFromFunc(t, 2, 2, func(x, z int) float64 {
		return float64(z*2+x) * 0.25
	})
	c := []Color{
		MustParseHex("#000000"),
		MustParseHex("#ff0000"),
		MustParseHex("#00ff00"),
		MustParseHex("#0000ff"),
	}
	bands := []Band{
		{Color: c[0], Threshold: 0},
		{Color: c[1], Threshold: 0.25},
		{Color: c[2], Threshold: 0.5},
		{Color: c[3], Threshold: 0.75},
	}

	img, err := Colorize(grid, bands, 4)
	require.NoError(t, err)

	// pixel p samples floor(p/3): columns/rows 0..2 -> cell 0, 3 -> cell 1
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			gx, gz := 0, 0
			if px == 3 {
				gx = 1
			}
			if py == 3 {
				gz = 1
			}
			assert.Equal(t, color.RGBA(c[gz*2+gx]), img.RGBAAt(px, py), "pixel (%d,%d)", px, py)
		}
	}
}

func TestSampleIndex(t *testing.T) {
	tests := []struct {
		p, resolution, size, want int
	}{
		{p: 0, resolution: 1, size: 10, want: 0},
		{p: 0, resolution: 5, size: 10, want: 0},
		{p: 4, resolution: 5, size: 10, want: 9},
		{p: 2, resolution: 5, size: 10, want: 4},
		{p: 3, resolution: 5, size: 10, want: 6},
		{p: 99, resolution: 100, size: 2, want: 1},
		{p: 98, resolution: 100, size: 2, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sampleIndex(tt.p, tt.resolution, tt.size), "sampleIndex(%d,%d,%d)", tt.p, tt.resolution, tt.size)
	}
}

func TestColorize_Errors(t *testing.T) {
	grid := testutil.FlatGrid(t, 4, 4, 0.5)

	tests := []struct {
		name       string
		grid       *heightfield.Grid
		bands      []Band
		resolution int
		field      string
	}{
		{name: "nil grid", grid: nil, bands: biomeBands(), resolution: 8, field: "heights"},
		{name: "empty bands", grid: grid, bands: nil, resolution: 8, field: "bands"},
		{name: "zero resolution", grid: grid, bands: biomeBands(), resolution: 0, field: "resolution"},
		{name: "negative resolution", grid: grid, bands: biomeBands(), resolution: -3, field: "resolution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Colorize(tt.grid, tt.bands, tt.resolution)
			require.Error(t, err)
			assert.Nil(t, img)

			var cfgErr *validation.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestDistribution(t *testing.T) {
	grid := testutil.GridFromFunc(t, 4, 1+1, func(x, z int) float64 {
		return []float64{0.1, 0.2, 0.5, 0.9}[x]
	})

	counts := Distribution(grid, biomeBands())
	assert.Equal(t, []int{4, 2, 2}, counts)
	assert.Equal(t, []int{}, Distribution(grid, nil))
}

func TestHeightmap(t *testing.T) {
	raw := testutil.GridFromFunc(t, 3, 2, func(x, z int) float64 {
		return float64(x) - 1
	})

	img, err := Heightmap(raw)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, uint16(0), img.Gray16At(0, 1).Y)
	assert.Equal(t, uint16(0x8000), img.Gray16At(1, 0).Y)
	assert.Equal(t, uint16(0xffff), img.Gray16At(2, 1).Y)

	flat := testutil.FlatGrid(t, 2, 2, 3)
	img, err = Heightmap(flat)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), img.Gray16At(1, 1).Y)

	_, err = Heightmap(nil)
	assert.True(t, validation.IsConfigError(err))
}
