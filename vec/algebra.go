package vec

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-geom/internal/fmath"
)

func checkSameLen[T Scalar](a, b Vector[T]) {
	if a.Len() != b.Len() {
		panic(ErrDimensionMismatch)
	}
}

// Dot returns the dot product of a and b. It panics with
// ErrDimensionMismatch if the arities differ.
func Dot[T Scalar](a, b Vector[T]) T {
	checkSameLen(a, b)
	d := a.At(0) * b.At(0)
	for i := 1; i < a.Len(); i++ {
		d += a.At(i) * b.At(i)
	}
	return d
}

// Mag2 returns the squared magnitude (sum of squared components).
func Mag2[T Scalar](v Vector[T]) T {
	m := v.At(0) * v.At(0)
	for i := 1; i < v.Len(); i++ {
		m += v.At(i) * v.At(i)
	}
	return m
}

// Mag returns the Euclidean magnitude.
func Mag[T Scalar](v Vector[T]) T {
	return fmath.Sqrt(Mag2(v))
}

// Dist2 returns the squared Euclidean distance between a and b.
func Dist2[T Scalar](a, b Vector[T]) T {
	checkSameLen(a, b)
	d := a.At(0) - b.At(0)
	sum := d * d
	for i := 1; i < a.Len(); i++ {
		d = a.At(i) - b.At(i)
		sum += d * d
	}
	return sum
}

// Dist returns the Euclidean distance between a and b.
func Dist[T Scalar](a, b Vector[T]) T {
	return fmath.Sqrt(Dist2(a, b))
}

// InfNorm returns the maximum absolute component.
func InfNorm[T Scalar](v Vector[T]) T {
	m := fmath.Abs(v.At(0))
	for i := 1; i < v.Len(); i++ {
		if a := fmath.Abs(v.At(i)); a > m {
			m = a
		}
	}
	return m
}

// CompMin returns the smallest component.
func CompMin[T Scalar](v Vector[T]) T {
	m := v.At(0)
	for i := 1; i < v.Len(); i++ {
		if c := v.At(i); c < m {
			m = c
		}
	}
	return m
}

// CompMax returns the largest component.
func CompMax[T Scalar](v Vector[T]) T {
	m := v.At(0)
	for i := 1; i < v.Len(); i++ {
		if c := v.At(i); c > m {
			m = c
		}
	}
	return m
}

// All reports whether every component is nonzero.
func All[T Scalar](v Vector[T]) bool {
	for i := 0; i < v.Len(); i++ {
		if v.At(i) == 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one component is nonzero.
func Any[T Scalar](v Vector[T]) bool {
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != 0 {
			return true
		}
	}
	return false
}

// Nonzero is an alias for Any.
func Nonzero[T Scalar](v Vector[T]) bool { return Any(v) }

// Equal reports exact per-component equality of a and b. Vectors of
// different arity are never equal.
func Equal[T Scalar](a, b Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// AlmostEqual reports whether the Euclidean distance between a and b
// is below epsilon.
func AlmostEqual[T Scalar](a, b Vector[T], epsilon T) bool {
	return Dist(a, b) < epsilon
}

// MinMaxN returns the element-wise minimum and maximum over 2 to 6
// vectors of equal arity. Any other argument count panics with
// ErrDimensionMismatch. Equal values carry no preference: either
// operand may be picked.
func MinMaxN[T Scalar](vs ...VecN[T]) (vmin, vmax VecN[T]) {
	if len(vs) < 2 || len(vs) > 6 {
		panic(ErrDimensionMismatch)
	}
	vmin = vs[0].Clone()
	vmax = vs[0].Clone()
	for _, v := range vs[1:] {
		vmin.checkArity(v)
		UpdateMinMaxN(v, vmin, vmax)
	}
	return vmin, vmax
}

// UpdateMinMaxN widens vmin and vmax element-wise, in place, so they
// contain x.
func UpdateMinMaxN[T Scalar](x, vmin, vmax VecN[T]) {
	x.checkArity(vmin)
	x.checkArity(vmax)
	for i := range x {
		if x[i] < vmin[i] {
			vmin[i] = x[i]
		} else if x[i] > vmax[i] {
			vmax[i] = x[i]
		}
	}
}

// Cross2 returns the scalar pseudo-cross product a.x*b.y - a.y*b.x.
func Cross2[T Scalar](a, b Vec2[T]) T {
	return a[0]*b[1] - a[1]*b[0]
}

// Cross3 returns the 3-d cross product of a and b.
func Cross3[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Triple returns the scalar triple product a . (b x c).
func Triple[T Scalar](a, b, c Vec3[T]) T {
	return a[0]*(b[1]*c[2]-b[2]*c[1]) +
		a[1]*(b[2]*c[0]-b[0]*c[2]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
}

// Perp returns a rotated 90 degrees counter-clockwise: (-a.y, a.x).
func Perp[T Scalar](a Vec2[T]) Vec2[T] {
	return Vec2[T]{-a[1], a[0]}
}

// Rotate returns a rotated counter-clockwise by angle radians.
func Rotate[T constraints.Float](a Vec2[T], angle T) Vec2[T] {
	c := fmath.Cos(angle)
	s := fmath.Sin(angle)
	return Vec2[T]{c*a[0] - s*a[1], s*a[0] + c*a[1]}
}

// Lerp2 linearly interpolates between a (t=0) and b (t=1).
func Lerp2[T constraints.Float](a, b Vec2[T], t T) Vec2[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Lerp3 linearly interpolates between a (t=0) and b (t=1).
func Lerp3[T constraints.Float](a, b Vec3[T], t T) Vec3[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Lerp4 linearly interpolates between a (t=0) and b (t=1).
func Lerp4[T constraints.Float](a, b Vec4[T], t T) Vec4[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// LerpN linearly interpolates between a (t=0) and b (t=1). It panics
// with ErrDimensionMismatch if the arities differ.
func LerpN[T constraints.Float](a, b VecN[T], t T) VecN[T] {
	a.checkArity(b)
	out := make(VecN[T], len(a))
	for i := range a {
		out[i] = (1-t)*a[i] + t*b[i]
	}
	return out
}
