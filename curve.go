package tween

import (
	"slices"
	"sort"
)

// Keyframe is a single point on a Curve. InTangent and OutTangent are the
// slopes (value per unit time) entering and leaving the key.
type Keyframe struct {
	Time       float64 `yaml:"time" json:"time"`
	Value      float64 `yaml:"value" json:"value"`
	InTangent  float64 `yaml:"in" json:"in"`
	OutTangent float64 `yaml:"out" json:"out"`
}

// Curve is a keyframed easing curve. Between keys the value follows a cubic
// Hermite spline; outside the first and last key it holds the end values.
// The zero Curve evaluates to t.
type Curve struct {
	keys []Keyframe
}

// NewCurve creates a curve from the given keyframes. Keys are sorted by Time;
// the input slice is not retained.
func NewCurve(keys ...Keyframe) *Curve {
	c := &Curve{keys: slices.Clone(keys)}
	slices.SortStableFunc(c.keys, func(a, b Keyframe) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	return c
}

// NewLinearCurve creates a two-key curve running straight from (0, from)
// to (1, to).
func NewLinearCurve(from, to float64) *Curve {
	slope := to - from
	return NewCurve(
		Keyframe{Time: 0, Value: from, InTangent: slope, OutTangent: slope},
		Keyframe{Time: 1, Value: to, InTangent: slope, OutTangent: slope},
	)
}

// CurveFromEase bakes fn into a curve with the given number of evenly spaced
// samples over [0, 1]. Tangents are estimated with finite differences.
// Fewer than two samples are raised to two.
func CurveFromEase(fn EaseFunc, samples int) *Curve {
	if samples < 2 {
		samples = 2
	}
	step := 1.0 / float64(samples-1)
	keys := make([]Keyframe, samples)
	for i := range keys {
		t := float64(i) * step
		keys[i] = Keyframe{Time: t, Value: fn(t)}
	}
	for i := range keys {
		var slope float64
		switch i {
		case 0:
			slope = (keys[1].Value - keys[0].Value) / step
		case samples - 1:
			slope = (keys[i].Value - keys[i-1].Value) / step
		default:
			slope = (keys[i+1].Value - keys[i-1].Value) / (2 * step)
		}
		keys[i].InTangent = slope
		keys[i].OutTangent = slope
	}
	return &Curve{keys: keys}
}

// Keys returns the curve's keyframes. The returned slice MUST NOT be mutated.
func (c *Curve) Keys() []Keyframe {
	return c.keys
}

// Evaluate samples the curve at t.
func (c *Curve) Evaluate(t float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return t
	case n == 1 || t <= c.keys[0].Time:
		return c.keys[0].Value
	case t >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}

	// First key strictly after t; the segment is [i-1, i].
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t })
	k0, k1 := c.keys[i-1], c.keys[i]
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}

	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}
