package curve

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-geom/internal/fmath"
)

// SmoothStep is the quintic smooth step r³(10 + r(-15 + 6r)), clamped
// so it returns 0 for r <= 0 and 1 for r >= 1. Its first and second
// derivatives vanish at both ends.
func SmoothStep[T constraints.Float](r T) T {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r * r * r * (10 + r*(-15+r*6))
}

// SmoothStepRange applies SmoothStep to r across the edge interval
// [rLower, rUpper] and maps the result onto [valueLower, valueUpper].
func SmoothStepRange[T constraints.Float](r, rLower, rUpper, valueLower, valueUpper T) T {
	return valueLower + SmoothStep((r-rLower)/(rUpper-rLower))*(valueUpper-valueLower)
}

// LinearStep is the linear analogue of SmoothStep: 0 at or below l,
// 1 at or above r, linear in between.
func LinearStep[T constraints.Float](l, r, v T) T {
	if v <= l {
		return 0
	}
	if v >= r {
		return 1
	}
	return (v - l) / (r - l)
}

// Ramp maps [-1, 1] through the smooth step, producing a smooth ramp
// from -1 to 1.
func Ramp[T constraints.Float](r T) T {
	return SmoothStep((r+1)/2)*2 - 1
}

// Impulse rises quickly to a maximum of 1 at x = 1/k and decays
// exponentially afterwards.
func Impulse[T constraints.Float](k, x T) T {
	h := k * x
	return h * fmath.Exp(1-h)
}

// CubicPulse is a symmetric cubic bump centered at c with half-width
// w: 1 at the center, 0 at |x-c| >= w.
func CubicPulse[T constraints.Float](c, w, x T) T {
	x = fmath.Abs(x - c)
	if x > w {
		return 0
	}
	x /= w
	return 1 - x*x*(3-2*x)
}

// ExpStep is the exponential step exp(-k * x^n): 1 at x = 0, falling
// off with sharpness controlled by k and n.
func ExpStep[T constraints.Float](x, k, n T) T {
	return fmath.Exp(-k * fmath.Pow(x, n))
}

// Parabola is (4x(1-x))^k: a unit bump over [0, 1], flattened or
// sharpened by k.
func Parabola[T constraints.Float](x, k T) T {
	return fmath.Pow(4*x*(1-x), k)
}

// PCurve is a power bump over [0, 1] with independent rise exponent a
// and fall exponent b, normalized so its maximum is 1.
func PCurve[T constraints.Float](x, a, b T) T {
	k := fmath.Pow(a+b, a+b) / (fmath.Pow(a, a) * fmath.Pow(b, b))
	return k * fmath.Pow(x, a) * fmath.Pow(1-x, b)
}

// SmoothStart2 eases in with t².
func SmoothStart2[T constraints.Float](t T) T { return t * t }

// SmoothStart3 eases in with t³.
func SmoothStart3[T constraints.Float](t T) T { return t * t * t }

// SmoothStart4 eases in with t⁴.
func SmoothStart4[T constraints.Float](t T) T { return t * t * t * t }

// SmoothStart5 eases in with t⁵.
func SmoothStart5[T constraints.Float](t T) T { return t * t * t * t * t }

// SmoothStop2 eases out with 1-(1-t)².
func SmoothStop2[T constraints.Float](t T) T {
	u := 1 - t
	return 1 - u*u
}

// SmoothStop3 eases out with 1-(1-t)³.
func SmoothStop3[T constraints.Float](t T) T {
	u := 1 - t
	return 1 - u*u*u
}

// SmoothStop4 eases out with 1-(1-t)⁴.
func SmoothStop4[T constraints.Float](t T) T {
	u := 1 - t
	return 1 - u*u*u*u
}

// SmoothStop5 eases out with 1-(1-t)⁵.
func SmoothStop5[T constraints.Float](t T) T {
	u := 1 - t
	return 1 - u*u*u*u*u
}

// AlmostIdentity behaves like the identity for x >= m but smoothly
// bends toward n as x approaches 0, never dropping below n. Requires
// 0 < n < m.
func AlmostIdentity[T constraints.Float](x, m, n T) T {
	if x > m {
		return x
	}
	a := 2*n - m
	b := 2*m - 3*n
	t := x / m
	return (a*t+b)*t*t + n
}

// ExpSustainedImpulse rises with x² until x = f, then sustains near 1
// with an exponential tail controlled by k.
func ExpSustainedImpulse[T constraints.Float](x, f, k T) T {
	s := x - f
	if s < 0 {
		s = 0
	}
	rise := x * x / (f * f)
	tail := 1 + (2/f)*s*fmath.Exp(-k*s)
	if rise < tail {
		return rise
	}
	return tail
}
