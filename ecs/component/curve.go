package component

import "sort"

// Keyframe is one point of a piecewise-linear curve.
type Keyframe struct {
	Time  float64 `yaml:"t"`
	Value float64 `yaml:"v"`
}

// Curve is a sorted keyframe list evaluated with linear interpolation and
// clamped at both ends.
type Curve []Keyframe

func (c Curve) Eval(t float64) float64 {
	switch len(c) {
	case 0:
		return 0
	case 1:
		return c[0].Value
	}
	if t <= c[0].Time {
		return c[0].Value
	}
	last := c[len(c)-1]
	if t >= last.Time {
		return last.Value
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].Time >= t })
	a, b := c[i-1], c[i]
	if b.Time == a.Time {
		return b.Value
	}
	f := (t - a.Time) / (b.Time - a.Time)
	return a.Value + f*(b.Value-a.Value)
}
