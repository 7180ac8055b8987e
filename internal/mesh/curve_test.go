package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terragen/internal/validation"
)

func TestLinear(t *testing.T) {
	curve := Linear()

	tests := []struct {
		in, want float64
	}{
		{in: -0.5, want: 0},
		{in: 0, want: 0},
		{in: 0.25, want: 0.25},
		{in: 0.8, want: 0.8},
		{in: 1, want: 1},
		{in: 3, want: 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, curve(tt.in), 1e-12, "Linear(%v)", tt.in)
	}
}

func TestNewKeyframeCurve(t *testing.T) {
	// flat water plateau, then a steep mountain ramp; keys given out of order
	curve, err := NewKeyframeCurve(
		Keyframe{Time: 1, Value: 1},
		Keyframe{Time: 0, Value: 0.1},
		Keyframe{Time: 0.4, Value: 0.1},
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, curve(-1), 1e-12)
	assert.InDelta(t, 0.1, curve(0.2), 1e-12)
	assert.InDelta(t, 0.1, curve(0.4), 1e-12)
	assert.InDelta(t, 0.55, curve(0.7), 1e-12)
	assert.InDelta(t, 1, curve(1), 1e-12)
	assert.InDelta(t, 1, curve(2), 1e-12)
}

func TestNewKeyframeCurve_NonMonotone(t *testing.T) {
	curve, err := NewKeyframeCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 1},
		Keyframe{Time: 1, Value: 0},
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, curve(0.25), 1e-12)
	assert.InDelta(t, 1, curve(0.5), 1e-12)
	assert.InDelta(t, 0.5, curve(0.75), 1e-12)
}

func TestNewKeyframeCurve_SingleKey(t *testing.T) {
	curve, err := NewKeyframeCurve(Keyframe{Time: 0.5, Value: 0.3})
	require.NoError(t, err)

	for _, in := range []float64{-1, 0, 0.5, 1, 10} {
		assert.Equal(t, 0.3, curve(in))
	}
}

func TestNewKeyframeCurve_Errors(t *testing.T) {
	tests := []struct {
		name string
		keys []Keyframe
	}{
		{name: "no keys", keys: nil},
		{name: "duplicate time", keys: []Keyframe{{Time: 0.5, Value: 0}, {Time: 0.5, Value: 1}}},
		{name: "nan time", keys: []Keyframe{{Time: math.NaN(), Value: 0}}},
		{name: "infinite value", keys: []Keyframe{{Time: 0, Value: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve, err := NewKeyframeCurve(tt.keys...)
			require.Error(t, err)
			assert.Nil(t, curve)
			assert.True(t, validation.IsConfigError(err))
		})
	}
}

func TestNewKeyframeCurve_DoesNotAliasInput(t *testing.T) {
	keys := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 2}}
	curve, err := NewKeyframeCurve(keys...)
	require.NoError(t, err)

	keys[1].Value = 100
	assert.InDelta(t, 1, curve(0.5), 1e-12)
}

func TestCurveFromKeyframes(t *testing.T) {
	curve, err := CurveFromKeyframes(nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, curve(0.6), 1e-12)

	curve, err = CurveFromKeyframes([]Keyframe{{Time: 0, Value: 1}, {Time: 1, Value: 0}})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, curve(0.25), 1e-12)
}
