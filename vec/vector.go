package vec

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-geom/internal/fmath"
)

// Scalar is the component type set accepted by all vector types.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vector is the shared indexing contract of every vector and view type
// in this package. The free-function algebra (Dot, Mag, Dist, Hash,
// Format, ...) operates on it uniformly.
type Vector[T Scalar] interface {
	// Len returns the arity N.
	Len() int
	// At returns component i. It panics with ErrOutOfRange if i is
	// outside [0, N).
	At(i int) T
}

// VecN is a vector of arbitrary dimension. The arity is fixed at
// construction and must never be changed afterwards; all operations
// between two VecN values require matching arity and panic with
// ErrDimensionMismatch otherwise.
//
// Unlike Vec2/Vec3/Vec4, a VecN is backed by a slice: copying the value
// aliases the components. Use Clone for an independent copy.
type VecN[T Scalar] []T

// NewN returns a zero-initialized vector of arity n.
// It panics with ErrDimensionMismatch if n < 1.
func NewN[T Scalar](n int) VecN[T] {
	if n < 1 {
		panic(ErrDimensionMismatch)
	}
	return make(VecN[T], n)
}

// Of builds a vector from its components. Only arities 2 through 6 are
// valid; any other argument count panics with ErrDimensionMismatch.
func Of[T Scalar](comps ...T) VecN[T] {
	if len(comps) < 2 || len(comps) > 6 {
		panic(ErrDimensionMismatch)
	}
	out := make(VecN[T], len(comps))
	copy(out, comps)
	return out
}

// SplatN returns an arity-n vector with every component set to value.
func SplatN[T Scalar](n int, value T) VecN[T] {
	out := NewN[T](n)
	for i := range out {
		out[i] = value
	}
	return out
}

// FromSliceN builds a vector from raw components of a possibly
// different scalar type, casting element-wise.
func FromSliceN[T, S Scalar](src []S) VecN[T] {
	if len(src) < 1 {
		panic(ErrDimensionMismatch)
	}
	out := make(VecN[T], len(src))
	for i, s := range src {
		out[i] = T(s)
	}
	return out
}

// ConvertN casts a vector to a different scalar type, element-wise.
func ConvertN[T, S Scalar](src VecN[S]) VecN[T] {
	out := make(VecN[T], len(src))
	for i, s := range src {
		out[i] = T(s)
	}
	return out
}

// Len returns the arity.
func (v VecN[T]) Len() int { return len(v) }

// At returns component i.
func (v VecN[T]) At(i int) T {
	if i < 0 || i >= len(v) {
		panic(ErrOutOfRange)
	}
	return v[i]
}

// Set assigns component i.
func (v VecN[T]) Set(i int, value T) {
	if i < 0 || i >= len(v) {
		panic(ErrOutOfRange)
	}
	v[i] = value
}

// Clone returns an independent copy of v.
func (v VecN[T]) Clone() VecN[T] {
	out := make(VecN[T], len(v))
	copy(out, v)
	return out
}

func (v VecN[T]) checkArity(o VecN[T]) {
	if len(v) != len(o) {
		panic(ErrDimensionMismatch)
	}
}

// Add returns v + o.
func (v VecN[T]) Add(o VecN[T]) VecN[T] {
	v.checkArity(o)
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub returns v - o.
func (v VecN[T]) Sub(o VecN[T]) VecN[T] {
	v.checkArity(o)
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out
}

// Neg returns -v.
func (v VecN[T]) Neg() VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = -v[i]
	}
	return out
}

// Mul returns the component-wise (Hadamard) product.
func (v VecN[T]) Mul(o VecN[T]) VecN[T] {
	v.checkArity(o)
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = v[i] * o[i]
	}
	return out
}

// Div returns the component-wise quotient. It panics with
// ErrDivisionByZero if any component of o is zero.
func (v VecN[T]) Div(o VecN[T]) VecN[T] {
	v.checkArity(o)
	out := make(VecN[T], len(v))
	for i := range v {
		if o[i] == 0 {
			panic(ErrDivisionByZero)
		}
		out[i] = v[i] / o[i]
	}
	return out
}

// AddScalar returns v with a added to every component.
func (v VecN[T]) AddScalar(a T) VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = v[i] + a
	}
	return out
}

// SubScalar returns v with a subtracted from every component.
func (v VecN[T]) SubScalar(a T) VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = v[i] - a
	}
	return out
}

// Scale returns v with every component multiplied by a.
func (v VecN[T]) Scale(a T) VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = v[i] * a
	}
	return out
}

// DivScalar returns v with every component divided by a. It panics
// with ErrDivisionByZero if a is zero.
func (v VecN[T]) DivScalar(a T) VecN[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = v[i] / a
	}
	return out
}

// SetAdd adds o to v in place and returns v.
func (v VecN[T]) SetAdd(o VecN[T]) VecN[T] {
	v.checkArity(o)
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// SetSub subtracts o from v in place and returns v.
func (v VecN[T]) SetSub(o VecN[T]) VecN[T] {
	v.checkArity(o)
	for i := range v {
		v[i] -= o[i]
	}
	return v
}

// SetMul multiplies v by o component-wise in place and returns v.
func (v VecN[T]) SetMul(o VecN[T]) VecN[T] {
	v.checkArity(o)
	for i := range v {
		v[i] *= o[i]
	}
	return v
}

// SetDiv divides v by o component-wise in place and returns v. It
// panics with ErrDivisionByZero if any component of o is zero.
func (v VecN[T]) SetDiv(o VecN[T]) VecN[T] {
	v.checkArity(o)
	for i := range v {
		if o[i] == 0 {
			panic(ErrDivisionByZero)
		}
		v[i] /= o[i]
	}
	return v
}

// SetAddScalar adds a to every component in place and returns v.
func (v VecN[T]) SetAddScalar(a T) VecN[T] {
	for i := range v {
		v[i] += a
	}
	return v
}

// SetSubScalar subtracts a from every component in place and returns v.
func (v VecN[T]) SetSubScalar(a T) VecN[T] {
	for i := range v {
		v[i] -= a
	}
	return v
}

// SetScale multiplies every component by a in place and returns v.
func (v VecN[T]) SetScale(a T) VecN[T] {
	for i := range v {
		v[i] *= a
	}
	return v
}

// SetDivScalar divides every component by a in place and returns v. It
// panics with ErrDivisionByZero if a is zero.
func (v VecN[T]) SetDivScalar(a T) VecN[T] {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	for i := range v {
		v[i] /= a
	}
	return v
}

// Clamp returns v with every component limited to [lower, upper].
func (v VecN[T]) Clamp(lower, upper T) VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = clampScalar(v[i], lower, upper)
	}
	return out
}

// ClampVec returns v with component i limited to [lower[i], upper[i]].
func (v VecN[T]) ClampVec(lower, upper VecN[T]) VecN[T] {
	v.checkArity(lower)
	v.checkArity(upper)
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = clampScalar(v[i], lower[i], upper[i])
	}
	return out
}

// Saturate returns v with every component clamped into [0, 1].
func (v VecN[T]) Saturate() VecN[T] {
	return v.Clamp(0, 1)
}

// Round rounds every component half away from zero.
func (v VecN[T]) Round() VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = fmath.Round(v[i])
	}
	return out
}

// Floor applies floor to every component.
func (v VecN[T]) Floor() VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = fmath.Floor(v[i])
	}
	return out
}

// Ceil applies ceil to every component.
func (v VecN[T]) Ceil() VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = fmath.Ceil(v[i])
	}
	return out
}

// Abs returns the component-wise absolute value.
func (v VecN[T]) Abs() VecN[T] {
	out := make(VecN[T], len(v))
	for i := range v {
		out[i] = fmath.Abs(v[i])
	}
	return out
}

// Min returns the component-wise minimum of v and o.
func (v VecN[T]) Min(o VecN[T]) VecN[T] {
	v.checkArity(o)
	out := make(VecN[T], len(v))
	for i := range v {
		if v[i] < o[i] {
			out[i] = v[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

// Max returns the component-wise maximum of v and o.
func (v VecN[T]) Max(o VecN[T]) VecN[T] {
	v.checkArity(o)
	out := make(VecN[T], len(v))
	for i := range v {
		if v[i] > o[i] {
			out[i] = v[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

// Normalize scales v to unit magnitude in place and returns v. It
// panics with ErrDegenerateVector if v has zero magnitude.
func (v VecN[T]) Normalize() VecN[T] {
	m := Mag[T](v)
	if m == 0 {
		panic(ErrDegenerateVector)
	}
	for i := range v {
		v[i] /= m
	}
	return v
}

// Normalized returns a unit-magnitude copy of v. It panics with
// ErrDegenerateVector if v has zero magnitude.
func (v VecN[T]) Normalized() VecN[T] {
	return v.Clone().Normalize()
}

// Normalise is an alias for Normalize.
func (v VecN[T]) Normalise() VecN[T] { return v.Normalize() }

// Normalised is an alias for Normalized.
func (v VecN[T]) Normalised() VecN[T] { return v.Normalized() }

// Equals reports exact per-component equality.
func (v VecN[T]) Equals(o VecN[T]) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Swizzle returns an axis-permutation view over v's storage.
func (v VecN[T]) Swizzle(axes ...Axis) View[T] {
	return newView(v, axes)
}

// String formats the components space-separated in index order.
func (v VecN[T]) String() string { return Format[T](v) }

func clampScalar[T Scalar](a, lower, upper T) T {
	if a < lower {
		return lower
	}
	if a > upper {
		return upper
	}
	return a
}
