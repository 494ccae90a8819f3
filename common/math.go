package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Facing returns -1 when left is true and +1 otherwise.
func Facing(left bool) float64 {
	if left {
		return -1
	}
	return 1
}

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(t float64) float64

var easings = map[string]EaseFunc{
	"Linear":  func(t float64) float64 { return t },
	"QuadIn":  func(t float64) float64 { return t * t },
	"QuadOut": func(t float64) float64 { return t * (2 - t) },
	"CubicIn": func(t float64) float64 { return t * t * t },
	"SineOut": func(t float64) float64 { return math.Sin(t * math.Pi / 2) },
}

// Ease looks up an easing curve by name, falling back to Linear.
func Ease(name string) EaseFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return easings["Linear"]
}
