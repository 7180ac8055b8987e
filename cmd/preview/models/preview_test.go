package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terragen/internal/config"
	"github.com/VoidMesh/terragen/internal/noise"
	"github.com/VoidMesh/terragen/internal/terrain"
)

func newTestPreview(t *testing.T) PreviewModel {
	t.Helper()
	return NewPreviewModel(terrain.NewGeneratorWithDefaultLogger(), config.BuiltinPresets(), config.DefaultPresetName)
}

// generate runs the command synchronously and feeds the result back.
func generate(t *testing.T, m PreviewModel, cmd tea.Cmd) PreviewModel {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(generatedMsg)
	require.True(t, ok)
	m, _ = m.applyResult(msg)
	return m
}

func TestNewPreviewModel(t *testing.T) {
	t.Run("known preset", func(t *testing.T) {
		m := NewPreviewModel(terrain.NewGeneratorWithDefaultLogger(), config.BuiltinPresets(), "islands")
		assert.Equal(t, "islands", m.label)
		assert.Equal(t, "islands", m.names[m.presetIndex])
		assert.Equal(t, noise.OpenSimplex, m.settings.Noise.Algorithm)
	})

	t.Run("unknown preset falls back to default", func(t *testing.T) {
		m := NewPreviewModel(terrain.NewGeneratorWithDefaultLogger(), config.BuiltinPresets(), "nope")
		assert.Equal(t, config.DefaultPresetName, m.label)
		assert.Equal(t, 0, m.presetIndex)
		assert.True(t, m.Stale())
	})
}

func TestPreviewHandleKey(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*terrain.Settings)
		key    string
		regen  bool
		verify func(*testing.T, terrain.Settings)
	}{
		{
			name:  "plus adds an octave",
			setup: func(s *terrain.Settings) { s.Noise.Octaves = 3 },
			key:   "+",
			regen: true,
			verify: func(t *testing.T, s terrain.Settings) {
				assert.Equal(t, 4, s.Noise.Octaves)
			},
		},
		{
			name:  "plus stops at the maximum",
			setup: func(s *terrain.Settings) { s.Noise.Octaves = terrain.MaxOctaves },
			key:   "+",
			verify: func(t *testing.T, s terrain.Settings) {
				assert.Equal(t, terrain.MaxOctaves, s.Noise.Octaves)
			},
		},
		{
			name:  "minus stops at one",
			setup: func(s *terrain.Settings) { s.Noise.Octaves = 1 },
			key:   "-",
			verify: func(t *testing.T, s terrain.Settings) {
				assert.Equal(t, 1, s.Noise.Octaves)
			},
		},
		{
			name:  "bracket lowers persistence",
			setup: func(s *terrain.Settings) { s.Noise.Persistence = 0.5 },
			key:   "[",
			regen: true,
			verify: func(t *testing.T, s terrain.Settings) {
				assert.Equal(t, 0.45, s.Noise.Persistence)
			},
		},
		{
			name:  "bracket clamps persistence at one",
			setup: func(s *terrain.Settings) { s.Noise.Persistence = 0.98 },
			key:   "]",
			regen: true,
			verify: func(t *testing.T, s terrain.Settings) {
				assert.Equal(t, 1.0, s.Noise.Persistence)
			},
		},
		{
			name:  "n toggles normalization",
			setup: func(s *terrain.Settings) { s.Noise.Normalize = false },
			key:   "n",
			regen: true,
			verify: func(t *testing.T, s terrain.Settings) {
				assert.True(t, s.Noise.Normalize)
			},
		},
		{
			name:  "a toggles the algorithm",
			setup: func(s *terrain.Settings) { s.Noise.Algorithm = "" },
			key:   "a",
			regen: true,
			verify: func(t *testing.T, s terrain.Settings) {
				assert.Equal(t, noise.OpenSimplex, s.Noise.Algorithm)
			},
		},
		{
			name:  "r asks for a random seed",
			setup: func(s *terrain.Settings) {},
			key:   "r",
			regen: true,
			verify: func(t *testing.T, s terrain.Settings) {
				assert.True(t, s.Noise.UseRandomSeed)
			},
		},
		{
			name:  "unbound key is ignored",
			setup: func(s *terrain.Settings) {},
			key:   "x",
			verify: func(t *testing.T, s terrain.Settings) {
				assert.Equal(t, terrain.DefaultSettings().Noise.Octaves, s.Noise.Octaves)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPreview(t)
			tt.setup(&m.settings)
			before := m.generation

			cmd := m.handleKey(tt.key)

			if tt.regen {
				assert.NotNil(t, cmd)
				assert.Equal(t, before+1, m.generation)
				assert.True(t, m.generating)
			} else {
				assert.Nil(t, cmd)
				assert.Equal(t, before, m.generation)
			}
			tt.verify(t, m.settings)
		})
	}
}

func TestPreviewCyclePresets(t *testing.T) {
	m := newTestPreview(t)
	names := config.BuiltinPresets().Names()

	for i := 1; i <= len(names); i++ {
		require.NotNil(t, m.handleKey("p"))
		assert.Equal(t, names[i%len(names)], m.label)
	}
}

func TestPreviewGeneration(t *testing.T) {
	m := newTestPreview(t)
	m.settings.Width, m.settings.Length = 16, 16

	cmd := m.Regenerate()
	m = generate(t, m, cmd)

	require.NoError(t, m.err)
	require.NotNil(t, m.Result())
	assert.False(t, m.generating)
	assert.False(t, m.Stale())
	assert.Equal(t, fallbackPixels, m.Result().Texture.Bounds().Dx())
	assert.NotEmpty(t, m.View())
}

func TestPreviewReseedPinsSeed(t *testing.T) {
	m := newTestPreview(t)
	m.settings.Width, m.settings.Length = 16, 16

	cmd := m.handleKey("r")
	require.NotNil(t, cmd)
	m = generate(t, m, cmd)

	require.NotNil(t, m.Result())
	assert.False(t, m.settings.Noise.UseRandomSeed)
	assert.Equal(t, m.Result().Seed, m.settings.Noise.Seed)
}

func TestPreviewDropsStaleResults(t *testing.T) {
	m := newTestPreview(t)
	m.settings.Width, m.settings.Length = 16, 16

	first := m.Regenerate()
	second := m.Regenerate()

	stale := first().(generatedMsg)
	m, _ = m.applyResult(stale)
	assert.Nil(t, m.Result())
	assert.True(t, m.generating)

	m, _ = m.applyResult(second().(generatedMsg))
	assert.NotNil(t, m.Result())
	assert.False(t, m.generating)
}

func TestPreviewGenerationError(t *testing.T) {
	m := newTestPreview(t)
	m.settings.Width = 1

	cmd := m.Regenerate()
	m = generate(t, m, cmd)

	assert.Error(t, m.err)
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Error")
}

func TestPreviewResolution(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"unknown size", 0, 0, fallbackPixels},
		{"limited by rows", 200, 36, 60},
		{"limited by columns", 100, 100, 60},
		{"clamped low", 20, 8, minPreviewPixels},
		{"clamped high", 1000, 1000, maxPreviewPixels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, previewResolution(tt.width, tt.height))
		})
	}
}

func TestStepPersistence(t *testing.T) {
	assert.Equal(t, 0.0, stepPersistence(0.02, -persistenceStep))
	assert.Equal(t, 0.55, stepPersistence(0.5, persistenceStep))
}

func TestNextAlgorithm(t *testing.T) {
	assert.Equal(t, noise.OpenSimplex, nextAlgorithm(noise.Perlin))
	assert.Equal(t, noise.Perlin, nextAlgorithm(noise.OpenSimplex))
	assert.Equal(t, noise.Perlin, nextAlgorithm("bogus"))
}
