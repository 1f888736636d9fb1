// Package fmath provides generic scalar math helpers shared by the
// public packages. Float32 arguments are routed through math32 so that
// single-precision vectors never round-trip through float64.
package fmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is the scalar type set accepted by the vector and curve
// packages.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sqrt returns the square root of x. For integer types the result is
// truncated toward zero.
func Sqrt[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(math.Sqrt(float64(x)))
	}
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Abs(v))
	case float64:
		return T(math.Abs(v))
	default:
		if x < 0 {
			return -x
		}
		return x
	}
}

// Round rounds half away from zero. Integer values pass through
// unchanged.
func Round[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Round(v))
	case float64:
		return T(math.Round(v))
	default:
		return x
	}
}

// Floor returns the largest integer value not greater than x.
func Floor[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Floor(v))
	case float64:
		return T(math.Floor(v))
	default:
		return x
	}
}

// Ceil returns the smallest integer value not less than x.
func Ceil[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Ceil(v))
	case float64:
		return T(math.Ceil(v))
	default:
		return x
	}
}

// Cos returns the cosine of x radians.
func Cos[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cos(v))
	default:
		return T(math.Cos(float64(x)))
	}
}

// Sin returns the sine of x radians.
func Sin[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sin(v))
	default:
		return T(math.Sin(float64(x)))
	}
}

// Exp returns e**x.
func Exp[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	default:
		return T(math.Exp(float64(x)))
	}
}

// Pow returns x**y.
func Pow[T constraints.Float](x, y T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Pow(v, float32(y)))
	default:
		return T(math.Pow(float64(x), float64(y)))
	}
}
