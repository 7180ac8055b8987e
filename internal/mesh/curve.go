package mesh

import (
	"math"
	"sort"

	"github.com/VoidMesh/terragen/internal/validation"
)

// Curve remaps a height sample before it is scaled by the height multiplier.
// Any float-to-float mapping is accepted; it need not be monotone.
type Curve func(float64) float64

// Identity returns its input unchanged.
func Identity(t float64) float64 {
	return t
}

// Keyframe is a single control point of a piecewise-linear curve.
type Keyframe struct {
	Time  float64 `json:"time" yaml:"time"`
	Value float64 `json:"value" yaml:"value"`
}

// Linear returns the curve through (0,0) and (1,1), clamped outside [0,1].
func Linear() Curve {
	curve, _ := NewKeyframeCurve(Keyframe{Time: 0, Value: 0}, Keyframe{Time: 1, Value: 1})
	return curve
}

// NewKeyframeCurve builds a piecewise-linear curve through keys. Inputs before
// the first key or after the last one evaluate to that key's value.
func NewKeyframeCurve(keys ...Keyframe) (Curve, error) {
	if len(keys) == 0 {
		return nil, validation.Errorf("curve", "at least one keyframe is required")
	}

	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	for i, k := range sorted {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) || math.IsNaN(k.Value) || math.IsInf(k.Value, 0) {
			return nil, validation.Errorf("curve", "keyframe %d is not finite", i)
		}
		if i > 0 && sorted[i-1].Time == k.Time {
			return nil, validation.Errorf("curve", "duplicate keyframe time %g", k.Time)
		}
	}

	return func(t float64) float64 {
		return evaluate(sorted, t)
	}, nil
}

// CurveFromKeyframes returns Linear for an empty key list and a keyframe
// curve otherwise.
func CurveFromKeyframes(keys []Keyframe) (Curve, error) {
	if len(keys) == 0 {
		return Linear(), nil
	}
	return NewKeyframeCurve(keys...)
}

func evaluate(keys []Keyframe, t float64) float64 {
	first, last := keys[0], keys[len(keys)-1]
	if t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	// first key strictly after t; always in [1, len-1] here
	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t })
	lo, hi := keys[i-1], keys[i]
	f := (t - lo.Time) / (hi.Time - lo.Time)
	return lo.Value + (hi.Value-lo.Value)*f
}
