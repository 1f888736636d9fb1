package vec

import "github.com/cwbudde/algo-geom/internal/fmath"

// Vec2 is a 2-component vector. The zero value is the zero vector.
type Vec2[T Scalar] [2]T

// Common instantiations.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec2i = Vec2[int]
)

// Zero2 returns (0, 0).
func Zero2[T Scalar]() Vec2[T] { return Vec2[T]{} }

// One2 returns (1, 1).
func One2[T Scalar]() Vec2[T] { return Vec2[T]{1, 1} }

// UnitX2 returns (1, 0).
func UnitX2[T Scalar]() Vec2[T] { return Vec2[T]{1, 0} }

// UnitY2 returns (0, 1).
func UnitY2[T Scalar]() Vec2[T] { return Vec2[T]{0, 1} }

// MaxValue2 returns a vector with every component set to the largest
// finite value of T.
func MaxValue2[T Scalar]() Vec2[T] {
	m := maxScalar[T]()
	return Vec2[T]{m, m}
}

// Splat2 returns (value, value).
func Splat2[T Scalar](value T) Vec2[T] { return Vec2[T]{value, value} }

// FromSlice2 builds a Vec2 from the first two elements of src, casting
// element-wise. It panics with ErrDimensionMismatch if src is shorter
// than 2.
func FromSlice2[T, S Scalar](src []S) Vec2[T] {
	if len(src) < 2 {
		panic(ErrDimensionMismatch)
	}
	return Vec2[T]{T(src[0]), T(src[1])}
}

// Convert2 casts a Vec2 to a different scalar type, element-wise.
func Convert2[T, S Scalar](src Vec2[S]) Vec2[T] {
	return Vec2[T]{T(src[0]), T(src[1])}
}

// Len returns 2.
func (v Vec2[T]) Len() int { return 2 }

// At returns component i. It panics with ErrOutOfRange if i is outside
// [0, 2).
func (v Vec2[T]) At(i int) T {
	if i < 0 || i >= 2 {
		panic(ErrOutOfRange)
	}
	return v[i]
}

// Set assigns component i. It panics with ErrOutOfRange if i is
// outside [0, 2).
func (v *Vec2[T]) Set(i int, value T) {
	if i < 0 || i >= 2 {
		panic(ErrOutOfRange)
	}
	v[i] = value
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// R is the color-alias of X.
func (v Vec2[T]) R() T { return v[0] }

// G is the color-alias of Y.
func (v Vec2[T]) G() T { return v[1] }

// SetX assigns the first component.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY assigns the second component.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Extend returns the 3-component vector (v.X, v.Y, z).
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Swizzle returns an axis-permutation view over v's storage. Writing
// through the view mutates v.
func (v *Vec2[T]) Swizzle(axes ...Axis) View[T] {
	return newView(v[:], axes)
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + o[0], v[1] + o[1]} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - o[0], v[1] - o[1]} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v[0], -v[1]} }

// Mul returns the component-wise (Hadamard) product.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] * o[0], v[1] * o[1]} }

// Div returns the component-wise quotient. It panics with
// ErrDivisionByZero if any component of o is zero.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	if o[0] == 0 || o[1] == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec2[T]{v[0] / o[0], v[1] / o[1]}
}

// AddScalar returns v with a added to every component.
func (v Vec2[T]) AddScalar(a T) Vec2[T] { return Vec2[T]{v[0] + a, v[1] + a} }

// SubScalar returns v with a subtracted from every component.
func (v Vec2[T]) SubScalar(a T) Vec2[T] { return Vec2[T]{v[0] - a, v[1] - a} }

// Scale returns v with every component multiplied by a.
func (v Vec2[T]) Scale(a T) Vec2[T] { return Vec2[T]{v[0] * a, v[1] * a} }

// DivScalar returns v with every component divided by a. It panics
// with ErrDivisionByZero if a is zero.
func (v Vec2[T]) DivScalar(a T) Vec2[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec2[T]{v[0] / a, v[1] / a}
}

// SetAdd adds o in place and returns the receiver.
func (v *Vec2[T]) SetAdd(o Vec2[T]) *Vec2[T] {
	v[0] += o[0]
	v[1] += o[1]
	return v
}

// SetSub subtracts o in place and returns the receiver.
func (v *Vec2[T]) SetSub(o Vec2[T]) *Vec2[T] {
	v[0] -= o[0]
	v[1] -= o[1]
	return v
}

// SetMul multiplies by o component-wise in place and returns the
// receiver.
func (v *Vec2[T]) SetMul(o Vec2[T]) *Vec2[T] {
	v[0] *= o[0]
	v[1] *= o[1]
	return v
}

// SetDiv divides by o component-wise in place and returns the
// receiver. It panics with ErrDivisionByZero if any component of o is
// zero.
func (v *Vec2[T]) SetDiv(o Vec2[T]) *Vec2[T] {
	if o[0] == 0 || o[1] == 0 {
		panic(ErrDivisionByZero)
	}
	v[0] /= o[0]
	v[1] /= o[1]
	return v
}

// SetAddScalar adds a to every component in place and returns the
// receiver.
func (v *Vec2[T]) SetAddScalar(a T) *Vec2[T] {
	v[0] += a
	v[1] += a
	return v
}

// SetSubScalar subtracts a from every component in place and returns
// the receiver.
func (v *Vec2[T]) SetSubScalar(a T) *Vec2[T] {
	v[0] -= a
	v[1] -= a
	return v
}

// SetScale multiplies every component by a in place and returns the
// receiver.
func (v *Vec2[T]) SetScale(a T) *Vec2[T] {
	v[0] *= a
	v[1] *= a
	return v
}

// SetDivScalar divides every component by a in place and returns the
// receiver. It panics with ErrDivisionByZero if a is zero.
func (v *Vec2[T]) SetDivScalar(a T) *Vec2[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	v[0] /= a
	v[1] /= a
	return v
}

// Clamp returns v with every component limited to [lower, upper].
func (v Vec2[T]) Clamp(lower, upper T) Vec2[T] {
	return Vec2[T]{
		clampScalar(v[0], lower, upper),
		clampScalar(v[1], lower, upper),
	}
}

// ClampVec returns v with component i limited to [lower[i], upper[i]].
func (v Vec2[T]) ClampVec(lower, upper Vec2[T]) Vec2[T] {
	return Vec2[T]{
		clampScalar(v[0], lower[0], upper[0]),
		clampScalar(v[1], lower[1], upper[1]),
	}
}

// Saturate returns v with every component clamped into [0, 1].
func (v Vec2[T]) Saturate() Vec2[T] { return v.Clamp(0, 1) }

// Round rounds every component half away from zero.
func (v Vec2[T]) Round() Vec2[T] {
	return Vec2[T]{fmath.Round(v[0]), fmath.Round(v[1])}
}

// Floor applies floor to every component.
func (v Vec2[T]) Floor() Vec2[T] {
	return Vec2[T]{fmath.Floor(v[0]), fmath.Floor(v[1])}
}

// Ceil applies ceil to every component.
func (v Vec2[T]) Ceil() Vec2[T] {
	return Vec2[T]{fmath.Ceil(v[0]), fmath.Ceil(v[1])}
}

// Abs returns the component-wise absolute value.
func (v Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{fmath.Abs(v[0]), fmath.Abs(v[1])}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{minT(v[0], o[0]), minT(v[1], o[1])}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{maxT(v[0], o[0]), maxT(v[1], o[1])}
}

// Normalize scales v to unit magnitude in place and returns the
// receiver. It panics with ErrDegenerateVector if v has zero
// magnitude.
func (v *Vec2[T]) Normalize() *Vec2[T] {
	m := fmath.Sqrt(v[0]*v[0] + v[1]*v[1])
	if m == 0 {
		panic(ErrDegenerateVector)
	}
	v[0] /= m
	v[1] /= m
	return v
}

// Normalized returns a unit-magnitude copy of v. It panics with
// ErrDegenerateVector if v has zero magnitude.
func (v Vec2[T]) Normalized() Vec2[T] {
	v.Normalize()
	return v
}

// Normalise is an alias for Normalize.
func (v *Vec2[T]) Normalise() *Vec2[T] { return v.Normalize() }

// Normalised is an alias for Normalized.
func (v Vec2[T]) Normalised() Vec2[T] { return v.Normalized() }

// Equals reports exact per-component equality. Vec2 values are also
// comparable with ==.
func (v Vec2[T]) Equals(o Vec2[T]) bool { return v == o }

// String formats the components space-separated in index order.
func (v Vec2[T]) String() string { return Format[T](v) }
