package scalar

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-geom/internal/fmath"
)

// Number is the numeric type set accepted by the arithmetic helpers.
type Number = fmath.Number

// Sqr returns x*x.
func Sqr[T Number](x T) T { return x * x }

// Cube returns x*x*x.
func Cube[T Number](x T) T { return x * x * x }

// Clamp limits a to the inclusive range [lower, upper].
func Clamp[T constraints.Ordered](a, lower, upper T) T {
	if a < lower {
		return lower
	}
	if a > upper {
		return upper
	}
	return a
}

// Saturate clamps v into the unit interval [0, 1].
func Saturate[T constraints.Float](v T) T {
	return Clamp(v, 0, 1)
}

// MapToRange linearly remaps v from [inStart, inEnd] to
// [outStart, outEnd]. Values outside the input range extrapolate.
func MapToRange[T constraints.Float](inStart, inEnd, outStart, outEnd, v T) T {
	slope := (outEnd - outStart) / (inEnd - inStart)
	return outStart + slope*(v-inStart)
}

// Barycentric decomposes x into an integer cell index i and a fraction
// f in [0, 1] such that x ~ i + f, clamping i into [iLow, iHigh-2] so
// that i and i+1 are both valid sample indices of a grid with iHigh
// samples. At the clamped ends f saturates to 0 or 1.
func Barycentric[T constraints.Float](x T, iLow, iHigh int) (i int, f T) {
	s := fmath.Floor(x)
	i = int(s)
	if i < iLow {
		return iLow, 0
	}
	if i > iHigh-2 {
		return iHigh - 2, 1
	}
	return i, x - s
}
