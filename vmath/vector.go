package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon below which a vector length is treated as zero
const Epsilon = 1e-9

// Vec returns a 2D vector
func Vec(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}

// Normalize returns unit vector, zero-safe
// Second return is false when v has no usable direction
func Normalize(v mgl64.Vec2) (mgl64.Vec2, bool) {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// Lerp returns a + (b - a) * t, t is not clamped
func Lerp(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Midpoint returns the centre of segment ab
func Midpoint(a, b mgl64.Vec2) mgl64.Vec2 {
	return a.Add(b).Mul(0.5)
}

// Distance returns Euclidean distance between a and b
func Distance(a, b mgl64.Vec2) float64 {
	return a.Sub(b).Len()
}

// DistanceSq returns squared distance without sqrt
func DistanceSq(a, b mgl64.Vec2) float64 {
	return a.Sub(b).LenSqr()
}

// WithinRadius reports whether p lies inside the closed circle (c, r)
func WithinRadius(p, c mgl64.Vec2, r float64) bool {
	return DistanceSq(p, c) <= r*r
}

// Clamp01 clamps f to [0, 1]
func Clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
