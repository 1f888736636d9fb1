package vec

import "errors"

var (
	// ErrOutOfRange indicates a component index outside [0, N).
	ErrOutOfRange = errors.New("vec: component index out of range")

	// ErrDimensionMismatch indicates an arity mismatch between vectors
	// or views in construction or assignment.
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")

	// ErrDegenerateVector indicates an attempt to normalize a
	// zero-magnitude vector.
	ErrDegenerateVector = errors.New("vec: cannot normalize zero-magnitude vector")

	// ErrDivisionByZero indicates a component-wise division by a zero
	// component or scalar.
	ErrDivisionByZero = errors.New("vec: component-wise division by zero")
)
