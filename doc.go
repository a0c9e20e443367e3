// Package vec provides an immutable 2D vector type.
//
// # Overview
//
// Vector2 holds two float64 components. Every operation is a pure function
// of its inputs and returns a new value, so vectors can be shared freely
// between goroutines.
//
//	import "github.com/gogpu/vec"
//
//	a := vec.V(3, 4)
//	b := vec.V(1, 2)
//
//	a.Add(b)       // vector(4, 6)
//	a.Scale(2)     // vector(6, 8)
//	a.Dot(b)       // 11
//	a.Magnitude()  // 5
//
//	n, err := a.Normalize() // vector(0.6, 0.8), nil
//
// # Errors
//
// Only three operations can fail:
//   - Div returns ErrDivisionByZero for a zero scalar
//   - Normalize returns ErrZeroVector for a zero-length vector
//   - AngleBetween returns ErrZeroVector if either vector has zero length
//
// # Equality
//
// Equal and == compare components exactly. Approx compares within an
// epsilon and is the better choice for values produced by Normalize or
// AngleBetween.
//
// # Text Form
//
// String returns "vector(x, y)" using the shortest decimal form of each
// component. GoString returns the detailed "vector: (x = x, y = y)".
package vec

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
