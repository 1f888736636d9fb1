package curve

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-geom/internal/fmath"
)

// QuadraticBSplineWeights returns the three quadratic B-spline weights
// for a fraction f in [0, 1]; f=0.5 weights w0 and w2 equally. The
// weights sum to 1.
func QuadraticBSplineWeights[T constraints.Float](f T) (w0, w1, w2 T) {
	w0 = 0.5 * (f - 1) * (f - 1)
	w1 = 0.75 - (f-0.5)*(f-0.5)
	w2 = 0.5 * f * f
	return w0, w1, w2
}

// CubicInterpWeights returns the four cubic interpolation weights for
// a fraction f in [0, 1]. The weights sum to 1.
func CubicInterpWeights[T constraints.Float](f T) (wneg1, w0, w1, w2 T) {
	f2 := f * f
	f3 := f2 * f
	wneg1 = -f/3 + f2/2 - f3/6
	w0 = 1 - f2 + (f3-f)/2
	w1 = f + (f2-f3)/2
	w2 = (f3 - f) / 6
	return wneg1, w0, w1, w2
}

// CubicInterp cubically interpolates between value0 (f=0) and value1
// (f=1) using the neighbor samples valueNeg1 and value2.
func CubicInterp[T constraints.Float](valueNeg1, value0, value1, value2, f T) T {
	wneg1, w0, w1, w2 := CubicInterpWeights(f)
	return wneg1*valueNeg1 + w0*value0 + w1*value1 + w2*value2
}

// CatmullRom evaluates the uniform Catmull-Rom segment between p1
// (t=0) and p2 (t=1), with p0 and p3 as outer control points.
func CatmullRom[T constraints.Float](t, p0, p1, p2, p3 T) T {
	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t*t +
		(-p0+3*p1-3*p2+p3)*t*t*t)
}

// CatmullRomAlpha evaluates the non-uniform (Barry-Goldman) Catmull-Rom
// segment between p1 (t=0) and p2 (t=1). Knot spacing is |Δp|^alpha:
// alpha 0 reduces to the uniform spline, 0.5 is the centripetal
// parameterization and 1 the chord-length one. Coincident neighbor
// points fall back to unit knot spacing to keep the segment defined.
func CatmullRomAlpha[T constraints.Float](t, alpha, p0, p1, p2, p3 T) T {
	t0 := T(0)
	t1 := nextKnot(t0, p0, p1, alpha)
	t2 := nextKnot(t1, p1, p2, alpha)
	t3 := nextKnot(t2, p2, p3, alpha)

	u := t1 + t*(t2-t1)
	a1 := (t1-u)/(t1-t0)*p0 + (u-t0)/(t1-t0)*p1
	a2 := (t2-u)/(t2-t1)*p1 + (u-t1)/(t2-t1)*p2
	a3 := (t3-u)/(t3-t2)*p2 + (u-t2)/(t3-t2)*p3
	b1 := (t2-u)/(t2-t0)*a1 + (u-t0)/(t2-t0)*a2
	b2 := (t3-u)/(t3-t1)*a2 + (u-t1)/(t3-t1)*a3
	return (t2-u)/(t2-t1)*b1 + (u-t1)/(t2-t1)*b2
}

// CatmullRomCentripetal evaluates the centripetal (alpha = 0.5)
// Catmull-Rom segment between p1 and p2.
func CatmullRomCentripetal[T constraints.Float](t, p0, p1, p2, p3 T) T {
	return CatmullRomAlpha(t, 0.5, p0, p1, p2, p3)
}

// CatmullRomChord evaluates the chord-length (alpha = 1) Catmull-Rom
// segment between p1 and p2.
func CatmullRomChord[T constraints.Float](t, p0, p1, p2, p3 T) T {
	return CatmullRomAlpha(t, 1, p0, p1, p2, p3)
}

func nextKnot[T constraints.Float](prev, pa, pb, alpha T) T {
	d := fmath.Abs(pb - pa)
	if d == 0 {
		return prev + 1
	}
	return prev + fmath.Pow(d, alpha)
}
