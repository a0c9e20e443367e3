package vec

import "errors"

var (
	// ErrDivisionByZero is returned when a vector is divided by a zero scalar.
	ErrDivisionByZero = errors.New("vec: division by zero")

	// ErrZeroVector is returned when an operation needs a direction but the
	// vector has zero magnitude.
	ErrZeroVector = errors.New("vec: zero-length vector has no direction")
)
