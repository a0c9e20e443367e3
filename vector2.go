package vec

import (
	"math"
	"strconv"
)

// Vector2 is an immutable 2D vector with float64 components.
// The zero value is the zero vector. Vector2 is comparable, so == compares
// components exactly.
type Vector2 struct {
	X, Y float64
}

// V is a convenience function to create a Vector2.
func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Div returns the vector divided by a scalar.
// It returns ErrDivisionByZero if k is zero.
func (v Vector2) Div(k float64) (Vector2, error) {
	if k == 0 {
		Logger().Debug("vec: divide by zero", "v", v)
		return Vector2{}, ErrDivisionByZero
	}
	return Vector2{X: v.X / k, Y: v.Y / k}, nil
}

// Neg returns the vector pointing in the opposite direction.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Magnitude returns the Euclidean length of the vector.
// It does not overflow or underflow for large or tiny components.
func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagnitudeSq returns the squared length of the vector.
// This is cheaper than Magnitude when only comparing lengths.
func (v Vector2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// It returns ErrZeroVector if the vector has zero magnitude.
func (v Vector2) Normalize() (Vector2, error) {
	m := v.Magnitude()
	if m == 0 {
		Logger().Debug("vec: normalize zero vector", "v", v)
		return Vector2{}, ErrZeroVector
	}
	return Vector2{X: v.X / m, Y: v.Y / m}, nil
}

// AngleBetween returns the unsigned angle between two vectors in radians,
// in the range [0, Pi]. It returns ErrZeroVector if either vector has zero
// magnitude.
func (v Vector2) AngleBetween(w Vector2) (float64, error) {
	mv, mw := v.Magnitude(), w.Magnitude()
	if mv == 0 || mw == 0 {
		Logger().Debug("vec: angle with zero vector", "v", v, "w", w)
		return 0, ErrZeroVector
	}
	// Scale to unit length first so the dot product cannot overflow.
	// Rounding can still push the cosine just outside [-1, 1].
	u := Vector2{X: v.X / mv, Y: v.Y / mv}
	z := Vector2{X: w.X / mw, Y: w.Y / mw}
	cos := max(-1, min(1, u.Dot(z)))
	return math.Acos(cos), nil
}

// Equal reports whether both components are exactly equal.
// Results of Normalize or AngleBetween rarely compare equal after rounding;
// use Approx for those.
func (v Vector2) Equal(w Vector2) bool {
	return v.X == w.X && v.Y == w.Y
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector2) Approx(w Vector2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// IsZero returns true if the vector is the zero vector.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String returns the vector as "vector(x, y)".
func (v Vector2) String() string {
	return "vector(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ")"
}

// GoString returns the detailed form "vector: (x = x, y = y)".
// It is used by the %#v verb.
func (v Vector2) GoString() string {
	return "vector: (x = " + formatFloat(v.X) + ", y = " + formatFloat(v.Y) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
