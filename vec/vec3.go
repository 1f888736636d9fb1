package vec

import "github.com/cwbudde/algo-geom/internal/fmath"

// Vec3 is a 3-component vector. The zero value is the zero vector.
type Vec3[T Scalar] [3]T

// Common instantiations.
type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec3i = Vec3[int]
)

// Zero3 returns (0, 0, 0).
func Zero3[T Scalar]() Vec3[T] { return Vec3[T]{} }

// One3 returns (1, 1, 1).
func One3[T Scalar]() Vec3[T] { return Vec3[T]{1, 1, 1} }

// UnitX3 returns (1, 0, 0).
func UnitX3[T Scalar]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// UnitY3 returns (0, 1, 0).
func UnitY3[T Scalar]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// UnitZ3 returns (0, 0, 1).
func UnitZ3[T Scalar]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// MaxValue3 returns a vector with every component set to the largest
// finite value of T.
func MaxValue3[T Scalar]() Vec3[T] {
	m := maxScalar[T]()
	return Vec3[T]{m, m, m}
}

// Color constants for 3-component (r, g, b) use.
func White3[T Scalar]() Vec3[T]   { return Vec3[T]{1, 1, 1} }
func Black3[T Scalar]() Vec3[T]   { return Vec3[T]{0, 0, 0} }
func Red3[T Scalar]() Vec3[T]     { return Vec3[T]{1, 0, 0} }
func Green3[T Scalar]() Vec3[T]   { return Vec3[T]{0, 1, 0} }
func Blue3[T Scalar]() Vec3[T]    { return Vec3[T]{0, 0, 1} }
func Yellow3[T Scalar]() Vec3[T]  { return Vec3[T]{1, 1, 0} }
func Cyan3[T Scalar]() Vec3[T]    { return Vec3[T]{0, 1, 1} }
func Magenta3[T Scalar]() Vec3[T] { return Vec3[T]{1, 0, 1} }

// Splat3 returns (value, value, value).
func Splat3[T Scalar](value T) Vec3[T] { return Vec3[T]{value, value, value} }

// FromSlice3 builds a Vec3 from the first three elements of src,
// casting element-wise. It panics with ErrDimensionMismatch if src is
// shorter than 3.
func FromSlice3[T, S Scalar](src []S) Vec3[T] {
	if len(src) < 3 {
		panic(ErrDimensionMismatch)
	}
	return Vec3[T]{T(src[0]), T(src[1]), T(src[2])}
}

// Convert3 casts a Vec3 to a different scalar type, element-wise.
func Convert3[T, S Scalar](src Vec3[S]) Vec3[T] {
	return Vec3[T]{T(src[0]), T(src[1]), T(src[2])}
}

// Len returns 3.
func (v Vec3[T]) Len() int { return 3 }

// At returns component i. It panics with ErrOutOfRange if i is outside
// [0, 3).
func (v Vec3[T]) At(i int) T {
	if i < 0 || i >= 3 {
		panic(ErrOutOfRange)
	}
	return v[i]
}

// Set assigns component i. It panics with ErrOutOfRange if i is
// outside [0, 3).
func (v *Vec3[T]) Set(i int, value T) {
	if i < 0 || i >= 3 {
		panic(ErrOutOfRange)
	}
	v[i] = value
}

// Named component accessors and their color aliases.
func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }
func (v Vec3[T]) R() T { return v[0] }
func (v Vec3[T]) G() T { return v[1] }
func (v Vec3[T]) B() T { return v[2] }

func (v *Vec3[T]) SetX(x T) { v[0] = x }
func (v *Vec3[T]) SetY(y T) { v[1] = y }
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// XY returns an aliasing view of the leading two components as a Vec2.
// Writing through the result mutates v.
func (v *Vec3[T]) XY() *Vec2[T] {
	return (*Vec2[T])(v[0:2])
}

// Extend returns the 4-component vector (v.X, v.Y, v.Z, w).
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// Swizzle returns an axis-permutation view over v's storage. Writing
// through the view mutates v.
func (v *Vec3[T]) Swizzle(axes ...Axis) View[T] {
	return newView(v[:], axes)
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }

// Mul returns the component-wise (Hadamard) product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// Div returns the component-wise quotient. It panics with
// ErrDivisionByZero if any component of o is zero.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	if o[0] == 0 || o[1] == 0 || o[2] == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec3[T]{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

// AddScalar returns v with a added to every component.
func (v Vec3[T]) AddScalar(a T) Vec3[T] { return Vec3[T]{v[0] + a, v[1] + a, v[2] + a} }

// SubScalar returns v with a subtracted from every component.
func (v Vec3[T]) SubScalar(a T) Vec3[T] { return Vec3[T]{v[0] - a, v[1] - a, v[2] - a} }

// Scale returns v with every component multiplied by a.
func (v Vec3[T]) Scale(a T) Vec3[T] { return Vec3[T]{v[0] * a, v[1] * a, v[2] * a} }

// DivScalar returns v with every component divided by a. It panics
// with ErrDivisionByZero if a is zero.
func (v Vec3[T]) DivScalar(a T) Vec3[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec3[T]{v[0] / a, v[1] / a, v[2] / a}
}

// SetAdd adds o in place and returns the receiver.
func (v *Vec3[T]) SetAdd(o Vec3[T]) *Vec3[T] {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
	return v
}

// SetSub subtracts o in place and returns the receiver.
func (v *Vec3[T]) SetSub(o Vec3[T]) *Vec3[T] {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
	return v
}

// SetMul multiplies by o component-wise in place and returns the
// receiver.
func (v *Vec3[T]) SetMul(o Vec3[T]) *Vec3[T] {
	v[0] *= o[0]
	v[1] *= o[1]
	v[2] *= o[2]
	return v
}

// SetDiv divides by o component-wise in place and returns the
// receiver. It panics with ErrDivisionByZero if any component of o is
// zero.
func (v *Vec3[T]) SetDiv(o Vec3[T]) *Vec3[T] {
	if o[0] == 0 || o[1] == 0 || o[2] == 0 {
		panic(ErrDivisionByZero)
	}
	v[0] /= o[0]
	v[1] /= o[1]
	v[2] /= o[2]
	return v
}

// SetAddScalar adds a to every component in place and returns the
// receiver.
func (v *Vec3[T]) SetAddScalar(a T) *Vec3[T] {
	v[0] += a
	v[1] += a
	v[2] += a
	return v
}

// SetSubScalar subtracts a from every component in place and returns
// the receiver.
func (v *Vec3[T]) SetSubScalar(a T) *Vec3[T] {
	v[0] -= a
	v[1] -= a
	v[2] -= a
	return v
}

// SetScale multiplies every component by a in place and returns the
// receiver.
func (v *Vec3[T]) SetScale(a T) *Vec3[T] {
	v[0] *= a
	v[1] *= a
	v[2] *= a
	return v
}

// SetDivScalar divides every component by a in place and returns the
// receiver. It panics with ErrDivisionByZero if a is zero.
func (v *Vec3[T]) SetDivScalar(a T) *Vec3[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	v[0] /= a
	v[1] /= a
	v[2] /= a
	return v
}

// Clamp returns v with every component limited to [lower, upper].
func (v Vec3[T]) Clamp(lower, upper T) Vec3[T] {
	return Vec3[T]{
		clampScalar(v[0], lower, upper),
		clampScalar(v[1], lower, upper),
		clampScalar(v[2], lower, upper),
	}
}

// ClampVec returns v with component i limited to [lower[i], upper[i]].
func (v Vec3[T]) ClampVec(lower, upper Vec3[T]) Vec3[T] {
	return Vec3[T]{
		clampScalar(v[0], lower[0], upper[0]),
		clampScalar(v[1], lower[1], upper[1]),
		clampScalar(v[2], lower[2], upper[2]),
	}
}

// Saturate returns v with every component clamped into [0, 1].
func (v Vec3[T]) Saturate() Vec3[T] { return v.Clamp(0, 1) }

// Round rounds every component half away from zero.
func (v Vec3[T]) Round() Vec3[T] {
	return Vec3[T]{fmath.Round(v[0]), fmath.Round(v[1]), fmath.Round(v[2])}
}

// Floor applies floor to every component.
func (v Vec3[T]) Floor() Vec3[T] {
	return Vec3[T]{fmath.Floor(v[0]), fmath.Floor(v[1]), fmath.Floor(v[2])}
}

// Ceil applies ceil to every component.
func (v Vec3[T]) Ceil() Vec3[T] {
	return Vec3[T]{fmath.Ceil(v[0]), fmath.Ceil(v[1]), fmath.Ceil(v[2])}
}

// Abs returns the component-wise absolute value.
func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{fmath.Abs(v[0]), fmath.Abs(v[1]), fmath.Abs(v[2])}
}

// Min returns the component-wise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{minT(v[0], o[0]), minT(v[1], o[1]), minT(v[2], o[2])}
}

// Max returns the component-wise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{maxT(v[0], o[0]), maxT(v[1], o[1]), maxT(v[2], o[2])}
}

// Normalize scales v to unit magnitude in place and returns the
// receiver. It panics with ErrDegenerateVector if v has zero
// magnitude.
func (v *Vec3[T]) Normalize() *Vec3[T] {
	m := fmath.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if m == 0 {
		panic(ErrDegenerateVector)
	}
	v[0] /= m
	v[1] /= m
	v[2] /= m
	return v
}

// Normalized returns a unit-magnitude copy of v. It panics with
// ErrDegenerateVector if v has zero magnitude.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

// Normalise is an alias for Normalize.
func (v *Vec3[T]) Normalise() *Vec3[T] { return v.Normalize() }

// Normalised is an alias for Normalized.
func (v Vec3[T]) Normalised() Vec3[T] { return v.Normalized() }

// Equals reports exact per-component equality. Vec3 values are also
// comparable with ==.
func (v Vec3[T]) Equals(o Vec3[T]) bool { return v == o }

// String formats the components space-separated in index order.
func (v Vec3[T]) String() string { return Format[T](v) }
