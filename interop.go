package vec

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// F64 converts the vector to an x/image f64.Vec2.
func (v Vector2) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// FromF64 creates a Vector2 from an x/image f64.Vec2.
func FromF64(a f64.Vec2) Vector2 {
	return Vector2{X: a[0], Y: a[1]}
}

// Fixed converts the vector to a 26.6 fixed-point point, rounding each
// component to the nearest 1/64. Components outside the Int26_6 range
// saturate at its bounds; NaN becomes 0.
func (v Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toInt26_6(v.X), Y: toInt26_6(v.Y)}
}

func toInt26_6(f float64) fixed.Int26_6 {
	r := math.Round(f * 64)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return fixed.Int26_6(r)
}

// FromFixed creates a Vector2 from a 26.6 fixed-point point.
func FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
