// Package vec implements fixed-dimension numeric vectors with value
// semantics.
//
// Three specialized array-backed types cover the common dimensions:
//
//   - [Vec2]: 2 components (x, y), also readable as (r, g)
//   - [Vec3]: 3 components (x, y, z) / (r, g, b), truncates to [Vec2]
//   - [Vec4]: 4 components (x, y, z, w) / (r, g, b, a), truncates to
//     [Vec3] and [Vec2]
//
// [VecN] covers any other dimension with the same method set; its arity
// is fixed when it is constructed and never changes afterwards.
//
// All four types implement the [Vector] indexing contract, which the
// free-function algebra ([Dot], [Mag], [Dist], [Hash], ...) operates
// on. Component-wise arithmetic is provided as methods: value receivers
// (Add, Sub, Scale, ...) return new vectors, Set-prefixed pointer
// receivers (SetAdd, SetScale, ...) mutate in place and return the
// receiver for chaining.
//
// Truncation views ([Vec3.XY], [Vec4.XYZ]) and axis-permutation views
// ([Vec3.Swizzle], [View]) alias the parent's storage: writing through
// a view mutates the parent. A view must not outlive the vector it was
// taken from.
//
// Contract violations (index out of range, arity mismatch, normalizing
// a zero vector, dividing by a zero component) are programmer errors
// and panic with the matching sentinel from this package, so a
// recovered value can be classified with errors.Is. Cross-arity misuse
// between Vec2/Vec3/Vec4 is impossible: the arities are distinct types
// and the compiler rejects it.
//
// The zero value of every vector type is the zero vector.
package vec
