package vec

import "github.com/cwbudde/algo-geom/internal/fmath"

// Vec4 is a 4-component vector. The zero value is the zero vector.
type Vec4[T Scalar] [4]T

// Common instantiations.
type (
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
	Vec4i = Vec4[int]
)

// Zero4 returns (0, 0, 0, 0).
func Zero4[T Scalar]() Vec4[T] { return Vec4[T]{} }

// One4 returns (1, 1, 1, 1).
func One4[T Scalar]() Vec4[T] { return Vec4[T]{1, 1, 1, 1} }

// UnitX4 returns (1, 0, 0, 0).
func UnitX4[T Scalar]() Vec4[T] { return Vec4[T]{1, 0, 0, 0} }

// UnitY4 returns (0, 1, 0, 0).
func UnitY4[T Scalar]() Vec4[T] { return Vec4[T]{0, 1, 0, 0} }

// UnitZ4 returns (0, 0, 1, 0).
func UnitZ4[T Scalar]() Vec4[T] { return Vec4[T]{0, 0, 1, 0} }

// MaxValue4 returns a vector with every component set to the largest
// finite value of T.
func MaxValue4[T Scalar]() Vec4[T] {
	m := maxScalar[T]()
	return Vec4[T]{m, m, m, m}
}

// Color constants for 4-component (r, g, b, a) use; alpha is 1.
func White4[T Scalar]() Vec4[T]   { return Vec4[T]{1, 1, 1, 1} }
func Black4[T Scalar]() Vec4[T]   { return Vec4[T]{0, 0, 0, 1} }
func Red4[T Scalar]() Vec4[T]     { return Vec4[T]{1, 0, 0, 1} }
func Green4[T Scalar]() Vec4[T]   { return Vec4[T]{0, 1, 0, 1} }
func Blue4[T Scalar]() Vec4[T]    { return Vec4[T]{0, 0, 1, 1} }
func Yellow4[T Scalar]() Vec4[T]  { return Vec4[T]{1, 1, 0, 1} }
func Cyan4[T Scalar]() Vec4[T]    { return Vec4[T]{0, 1, 1, 1} }
func Magenta4[T Scalar]() Vec4[T] { return Vec4[T]{1, 0, 1, 1} }

// Splat4 returns (value, value, value, value).
func Splat4[T Scalar](value T) Vec4[T] {
	return Vec4[T]{value, value, value, value}
}

// FromSlice4 builds a Vec4 from the first four elements of src,
// casting element-wise. It panics with ErrDimensionMismatch if src is
// shorter than 4.
func FromSlice4[T, S Scalar](src []S) Vec4[T] {
	if len(src) < 4 {
		panic(ErrDimensionMismatch)
	}
	return Vec4[T]{T(src[0]), T(src[1]), T(src[2]), T(src[3])}
}

// Convert4 casts a Vec4 to a different scalar type, element-wise.
func Convert4[T, S Scalar](src Vec4[S]) Vec4[T] {
	return Vec4[T]{T(src[0]), T(src[1]), T(src[2]), T(src[3])}
}

// Len returns 4.
func (v Vec4[T]) Len() int { return 4 }

// At returns component i. It panics with ErrOutOfRange if i is outside
// [0, 4).
func (v Vec4[T]) At(i int) T {
	if i < 0 || i >= 4 {
		panic(ErrOutOfRange)
	}
	return v[i]
}

// Set assigns component i. It panics with ErrOutOfRange if i is
// outside [0, 4).
func (v *Vec4[T]) Set(i int, value T) {
	if i < 0 || i >= 4 {
		panic(ErrOutOfRange)
	}
	v[i] = value
}

// Named component accessors and their color aliases.
func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }
func (v Vec4[T]) R() T { return v[0] }
func (v Vec4[T]) G() T { return v[1] }
func (v Vec4[T]) B() T { return v[2] }
func (v Vec4[T]) A() T { return v[3] }

func (v *Vec4[T]) SetX(x T) { v[0] = x }
func (v *Vec4[T]) SetY(y T) { v[1] = y }
func (v *Vec4[T]) SetZ(z T) { v[2] = z }
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// XY returns an aliasing view of the leading two components as a Vec2.
// Writing through the result mutates v.
func (v *Vec4[T]) XY() *Vec2[T] {
	return (*Vec2[T])(v[0:2])
}

// XYZ returns an aliasing view of the leading three components as a
// Vec3. Writing through the result mutates v.
func (v *Vec4[T]) XYZ() *Vec3[T] {
	return (*Vec3[T])(v[0:3])
}

// Swizzle returns an axis-permutation view over v's storage. Writing
// through the view mutates v.
func (v *Vec4[T]) Swizzle(axes ...Axis) View[T] {
	return newView(v[:], axes)
}

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }

// Mul returns the component-wise (Hadamard) product.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

// Div returns the component-wise quotient. It panics with
// ErrDivisionByZero if any component of o is zero.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	if o[0] == 0 || o[1] == 0 || o[2] == 0 || o[3] == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec4[T]{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

// AddScalar returns v with a added to every component.
func (v Vec4[T]) AddScalar(a T) Vec4[T] {
	return Vec4[T]{v[0] + a, v[1] + a, v[2] + a, v[3] + a}
}

// SubScalar returns v with a subtracted from every component.
func (v Vec4[T]) SubScalar(a T) Vec4[T] {
	return Vec4[T]{v[0] - a, v[1] - a, v[2] - a, v[3] - a}
}

// Scale returns v with every component multiplied by a.
func (v Vec4[T]) Scale(a T) Vec4[T] {
	return Vec4[T]{v[0] * a, v[1] * a, v[2] * a, v[3] * a}
}

// DivScalar returns v with every component divided by a. It panics
// with ErrDivisionByZero if a is zero.
func (v Vec4[T]) DivScalar(a T) Vec4[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec4[T]{v[0] / a, v[1] / a, v[2] / a, v[3] / a}
}

// SetAdd adds o in place and returns the receiver.
func (v *Vec4[T]) SetAdd(o Vec4[T]) *Vec4[T] {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
	v[3] += o[3]
	return v
}

// SetSub subtracts o in place and returns the receiver.
func (v *Vec4[T]) SetSub(o Vec4[T]) *Vec4[T] {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
	v[3] -= o[3]
	return v
}

// SetMul multiplies by o component-wise in place and returns the
// receiver.
func (v *Vec4[T]) SetMul(o Vec4[T]) *Vec4[T] {
	v[0] *= o[0]
	v[1] *= o[1]
	v[2] *= o[2]
	v[3] *= o[3]
	return v
}

// SetDiv divides by o component-wise in place and returns the
// receiver. It panics with ErrDivisionByZero if any component of o is
// zero.
func (v *Vec4[T]) SetDiv(o Vec4[T]) *Vec4[T] {
	if o[0] == 0 || o[1] == 0 || o[2] == 0 || o[3] == 0 {
		panic(ErrDivisionByZero)
	}
	v[0] /= o[0]
	v[1] /= o[1]
	v[2] /= o[2]
	v[3] /= o[3]
	return v
}

// SetAddScalar adds a to every component in place and returns the
// receiver.
func (v *Vec4[T]) SetAddScalar(a T) *Vec4[T] {
	v[0] += a
	v[1] += a
	v[2] += a
	v[3] += a
	return v
}

// SetSubScalar subtracts a from every component in place and returns
// the receiver.
func (v *Vec4[T]) SetSubScalar(a T) *Vec4[T] {
	v[0] -= a
	v[1] -= a
	v[2] -= a
	v[3] -= a
	return v
}

// SetScale multiplies every component by a in place and returns the
// receiver.
func (v *Vec4[T]) SetScale(a T) *Vec4[T] {
	v[0] *= a
	v[1] *= a
	v[2] *= a
	v[3] *= a
	return v
}

// SetDivScalar divides every component by a in place and returns the
// receiver. It panics with ErrDivisionByZero if a is zero.
func (v *Vec4[T]) SetDivScalar(a T) *Vec4[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	v[0] /= a
	v[1] /= a
	v[2] /= a
	v[3] /= a
	return v
}

// Clamp returns v with every component limited to [lower, upper].
func (v Vec4[T]) Clamp(lower, upper T) Vec4[T] {
	return Vec4[T]{
		clampScalar(v[0], lower, upper),
		clampScalar(v[1], lower, upper),
		clampScalar(v[2], lower, upper),
		clampScalar(v[3], lower, upper),
	}
}

// ClampVec returns v with component i limited to [lower[i], upper[i]].
func (v Vec4[T]) ClampVec(lower, upper Vec4[T]) Vec4[T] {
	return Vec4[T]{
		clampScalar(v[0], lower[0], upper[0]),
		clampScalar(v[1], lower[1], upper[1]),
		clampScalar(v[2], lower[2], upper[2]),
		clampScalar(v[3], lower[3], upper[3]),
	}
}

// Saturate returns v with every component clamped into [0, 1].
func (v Vec4[T]) Saturate() Vec4[T] { return v.Clamp(0, 1) }

// Round rounds every component half away from zero.
func (v Vec4[T]) Round() Vec4[T] {
	return Vec4[T]{fmath.Round(v[0]), fmath.Round(v[1]), fmath.Round(v[2]), fmath.Round(v[3])}
}

// Floor applies floor to every component.
func (v Vec4[T]) Floor() Vec4[T] {
	return Vec4[T]{fmath.Floor(v[0]), fmath.Floor(v[1]), fmath.Floor(v[2]), fmath.Floor(v[3])}
}

// Ceil applies ceil to every component.
func (v Vec4[T]) Ceil() Vec4[T] {
	return Vec4[T]{fmath.Ceil(v[0]), fmath.Ceil(v[1]), fmath.Ceil(v[2]), fmath.Ceil(v[3])}
}

// Abs returns the component-wise absolute value.
func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{fmath.Abs(v[0]), fmath.Abs(v[1]), fmath.Abs(v[2]), fmath.Abs(v[3])}
}

// Normalize scales v to unit magnitude in place and returns the
// receiver. It panics with ErrDegenerateVector if v has zero
// magnitude.
func (v *Vec4[T]) Normalize() *Vec4[T] {
	m := fmath.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
	if m == 0 {
		panic(ErrDegenerateVector)
	}
	v[0] /= m
	v[1] /= m
	v[2] /= m
	v[3] /= m
	return v
}

// Normalized returns a unit-magnitude copy of v. It panics with
// ErrDegenerateVector if v has zero magnitude.
func (v Vec4[T]) Normalized() Vec4[T] {
	v.Normalize()
	return v
}

// Normalise is an alias for Normalize.
func (v *Vec4[T]) Normalise() *Vec4[T] { return v.Normalize() }

// Normalised is an alias for Normalized.
func (v Vec4[T]) Normalised() Vec4[T] { return v.Normalized() }

// Equals reports exact per-component equality. Vec4 values are also
// comparable with ==.
func (v Vec4[T]) Equals(o Vec4[T]) bool { return v == o }

// String formats the components space-separated in index order.
func (v Vec4[T]) String() string { return Format[T](v) }
